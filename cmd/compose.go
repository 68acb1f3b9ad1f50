package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
)

var (
	composeName    string
	composeEmail   string
	composeMessage string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Validate a contact message and print its mailto target",
	Long: `Runs the contact form rules against the given fields. On success the
mailto target the site would open is printed; otherwise each invalid field
is reported and the command fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		out := cmd.OutOrStdout()
		form := contact.NewController(cfg.ContactAddress, contact.OpenerFunc(func(target string) {
			fmt.Fprintln(out, target)
		}))
		form.UpdateField(contact.Name, composeName)
		form.UpdateField(contact.Email, composeEmail)
		form.UpdateField(contact.Message, composeMessage)

		if _, ok := form.Submit(); !ok {
			errs := form.Errors()
			for _, f := range contact.Fields {
				if msg, bad := errs[f]; bad {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f, msg)
				}
			}
			return fmt.Errorf("contact form is invalid")
		}
		return nil
	},
}

func init() {
	composeCmd.Flags().StringVar(&composeName, "name", "", "sender name")
	composeCmd.Flags().StringVar(&composeEmail, "email", "", "sender email")
	composeCmd.Flags().StringVar(&composeMessage, "message", "", "message body")
	rootCmd.AddCommand(composeCmd)
}
