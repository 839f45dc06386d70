package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/bokforing_app/internal/core/accounts"
	"github.com/SscSPs/bokforing_app/internal/core/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/SscSPs/bokforing_app/internal/repositories/database/memory"
	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPayrollCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll calculations",
	}
	cmd.AddCommand(newPayrollCalculateCommand(a))
	return cmd
}

func newPayrollCalculateCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a payslip and its postings from a YAML request",
		Example: `  bokforing payroll calculate -f march.yaml
  cat march.yaml | bokforing payroll calculate -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readPayrollRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}

			// The preview never writes, so an empty store is enough.
			container, err := services.NewServiceContainer(cfg, memory.NewStore(accounts.DefaultChart()).RepositoryProvider())
			if err != nil {
				return err
			}
			preview, err := container.Payroll.Preview(cmd.Context(), *req)
			if err != nil {
				return err
			}
			return writePayrollPreview(cmd.OutOrStdout(), preview)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", `request file, "-" reads stdin`)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readPayrollRequest(stdin io.Reader, file string) (*dto.PayrollCalculateRequest, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payroll request: %w", err)
	}

	var req dto.PayrollCalculateRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse payroll request: %w", err)
	}

	// Same tags the HTTP layer validates through gin.
	v := validator.New()
	v.SetTagName("binding")
	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid payroll request: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("invalid payroll request: %w", err)
	}
	return &req, nil
}

func writePayrollPreview(w io.Writer, preview *dto.PayrollPreviewResponse) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(preview); err != nil {
		return fmt.Errorf("failed to encode payroll preview: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	res := preview.Result
	_, err := fmt.Fprintf(w, "\n# Bruttolön:          %s\n# Preliminärskatt:    %s\n# Nettolön:           %s\n# Arbetsgivaravgifter: %s\n",
		utils.FormatKronor(res.GrossPay),
		utils.FormatKronor(res.WithheldTax),
		utils.FormatKronor(res.NetPay),
		utils.FormatKronor(res.EmployerSocialFees),
	)
	return err
}
