package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daily-priority-agent/config"
	"daily-priority-agent/pkg/gcalendar"
)

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth [credentials.json]",
	Short: "Authorize Google Calendar access and save token.json",
	Long: `Run the one-time OAuth consent flow for Desktop App credentials. The token
is saved as token.json next to the credentials file, where plan --schedule
and the API server look for it.

Service Account credentials need no authorization step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendarAuth,
}

func init() {
	rootCmd.AddCommand(calendarAuthCmd)
}

func runCalendarAuth(cmd *cobra.Command, args []string) error {
	credsPath := ""
	if len(args) > 0 {
		credsPath = args[0]
	} else {
		cfg, err := config.LoadFile(configFile)
		if err != nil {
			return err
		}
		credsPath = cfg.Calendar.CredentialsPath
	}
	if credsPath == "" {
		return fmt.Errorf("no credentials file: pass one or set calendar.credentials_path")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials file %q: %w", credsPath, err)
	}

	a, err := gcalendar.NewAuthorizer(data)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Step 1: open this URL in a browser and sign in with your Google account:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.AuthCodeURL("state-token"))
	fmt.Fprintln(w)
	fmt.Fprint(w, "Step 2: paste the authorization code here and press Enter: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	code = strings.TrimSpace(code)
	if code == "" {
		if err != nil {
			return fmt.Errorf("read authorization code: %w", err)
		}
		return fmt.Errorf("empty authorization code")
	}

	tokenPath := gcalendar.TokenPath(credsPath)
	if err := a.Exchange(cmd.Context(), code, tokenPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSaved: %s\n", tokenPath)
	return nil
}
