package cmd

import (
	"context"
	"fmt"

	"github.com/moroii69/gspdfc/pdf"
	"github.com/moroii69/gspdfc/types"
	"github.com/moroii69/gspdfc/ui"
	"github.com/moroii69/gspdfc/utils"
)

type CheckCmd struct {
	GsCommand string `name:"gs-command" help:"Ghostscript binary to check (default: auto-detect)"`
}

// Run verifies that Ghostscript is installed and runnable.
func (cmd *CheckCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("gspdfc %s", version)))

	command := cmd.GsCommand
	if command == "" {
		found, err := utils.FindGhostscript()
		if err != nil {
			return err
		}
		command = found
	}

	gsVersion, err := pdf.GhostscriptVersion(ctx, command)
	if err != nil {
		return fmt.Errorf("ghostscript at %s is not runnable: %w", command, err)
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("ghostscript %s found at %s", gsVersion, command)))
	return nil
}
