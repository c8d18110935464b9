package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/package-layer/internal/install"
	"github.com/conn-castle/package-layer/internal/messages"
	"github.com/conn-castle/package-layer/internal/terminal"
)

const (
	flagID              = "id"
	flagPackage         = "package"
	flagInstallationKey = "installation-key"
	flagWait            = "wait"
	flagPublishWait     = "publish-wait"
	flagUpgradeType     = "upgrade-type"
	flagApexCompile     = "apex-compile"
	flagSecurityType    = "security-type"
	flagNoPrompt        = "no-prompt"
	flagTargetOrg       = "target-org"
)

var isStdinTerminalFunc = terminal.IsStdinTerminal
var readPasswordFunc = terminal.ReadPassword

type installFlags struct {
	id              string
	pkg             string
	installationKey string
	wait            int
	publishWait     int
	upgradeType     string
	apexCompile     string
	securityType    string
	noPrompt        bool
	targetOrg       string
}

func newInstallCmd() *cobra.Command {
	flags := &installFlags{}
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.id, flagID, "", messages.InstallFlagID)
	cmd.Flags().StringVar(&flags.pkg, flagPackage, "", messages.InstallFlagPackage)
	cmd.Flags().StringVar(&flags.installationKey, flagInstallationKey, "", messages.InstallFlagInstallationKey)
	cmd.Flags().IntVar(&flags.wait, flagWait, 0, messages.InstallFlagWait)
	cmd.Flags().IntVar(&flags.publishWait, flagPublishWait, 0, messages.InstallFlagPublishWait)
	cmd.Flags().StringVar(&flags.upgradeType, flagUpgradeType, string(install.DefaultUpgradeType), messages.InstallFlagUpgradeType)
	cmd.Flags().StringVar(&flags.apexCompile, flagApexCompile, string(install.DefaultApexCompileType), messages.InstallFlagApexCompile)
	cmd.Flags().StringVar(&flags.securityType, flagSecurityType, string(install.SecurityAllUsers), messages.InstallFlagSecurityType)
	cmd.Flags().BoolVar(&flags.noPrompt, flagNoPrompt, false, messages.InstallFlagNoPrompt)
	cmd.Flags().StringVar(&flags.targetOrg, flagTargetOrg, "", messages.InstallFlagTargetOrg)

	return cmd
}

func runInstall(cmd *cobra.Command, flags *installFlags) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	client, orgName, err := connectTarget(flags.targetOrg, cfg.APIVersion)
	if err != nil {
		return err
	}

	// One buffered reader serves both the key prompt and the confirmation
	// gates so buffered answer lines are never lost between them.
	stdin := bufio.NewReader(cmd.InOrStdin())
	key, err := resolveInstallationKey(flags.installationKey, stdin, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	opts := install.Options{
		ID:                 flags.id,
		Package:            flags.pkg,
		InstallationKey:    key,
		WaitMinutes:        flags.wait,
		PublishWaitMinutes: flags.publishWait,
		UpgradeType:        install.UpgradeType(flags.upgradeType),
		ApexCompileType:    install.ApexCompileType(flags.apexCompile),
		SecurityType:       install.SecurityType(flags.securityType),
		NoPrompt:           flags.noPrompt,
		Client:             client,
		Aliases:            cfg,
		Confirm:            install.NewLineConfirmer(stdin, cmd.OutOrStdout()),
		WarnWriter:         yellowWriter{cmd.ErrOrStderr()},
		StatusWriter:       cmd.OutOrStdout(),
	}

	outcome, err := install.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	printOutcome(cmd.OutOrStdout(), outcome, orgName)
	return nil
}

// resolveInstallationKey expands a literal "-" into a key read from the
// user: without echo on a real terminal, as a plain line otherwise.
func resolveInstallationKey(value string, in *bufio.Reader, out io.Writer) (string, error) {
	if value != "-" {
		return value, nil
	}
	_, _ = fmt.Fprint(out, messages.InstallKeyPrompt)
	if isStdinTerminalFunc() {
		key, err := readPasswordFunc(int(os.Stdin.Fd()))
		_, _ = fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(key)), nil
	}
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	_, _ = fmt.Fprintln(out)
	return strings.TrimSpace(line), nil
}

// printOutcome renders the final report line. The terminated sentinel
// produces no message at all.
func printOutcome(out io.Writer, outcome install.Outcome, orgName string) {
	msg := outcome.Message(orgName)
	if msg == "" {
		return
	}
	if outcome.Request.Status == install.StatusSuccess {
		msg = color.GreenString("%s", msg)
	}
	_, _ = fmt.Fprintln(out, msg)
}

// yellowWriter colors warning lines the way the rest of the CLI does.
type yellowWriter struct {
	w io.Writer
}

func (y yellowWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(y.w, color.YellowString("%s", string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
