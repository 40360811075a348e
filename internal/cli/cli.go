// Package cli implements the drfriend command line.
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/iudanet/drfriend/internal/cli/iocli"
	"github.com/iudanet/drfriend/internal/lifecycle"
	"github.com/iudanet/drfriend/internal/profile"
)

var (
	// ErrConfirmationRequired is returned when a destructive command runs
	// without a terminal and without --yes
	ErrConfirmationRequired = errors.New("confirmation required, rerun with --yes")

	// ErrAborted is returned when the user declines a confirmation prompt
	ErrAborted = errors.New("aborted")

	// ErrFileTooLarge is returned when an uploaded file exceeds the configured limit
	ErrFileTooLarge = errors.New("file is too large")

	// ErrFileExists is returned when download would overwrite a file without --force
	ErrFileExists = errors.New("file already exists, rerun with --force")
)

// Cli runs command bodies against injected services
type Cli struct {
	io        iocli.IO
	lifecycle lifecycle.Service
	profile   profile.Service
	fs        afero.Fs
	logger    *slog.Logger
	maxUpload int64
}

// New creates a Cli. fs is used for reading uploads and writing downloads.
func New(io iocli.IO, lc lifecycle.Service, ps profile.Service, fs afero.Fs, logger *slog.Logger, maxUpload int64) *Cli {
	return &Cli{
		io:        io,
		lifecycle: lc,
		profile:   ps,
		fs:        fs,
		logger:    logger,
		maxUpload: maxUpload,
	}
}

// confirm спрашивает подтверждение у пользователя.
// Без терминала подтверждение возможно только флагом --yes.
func (c *Cli) confirm(prompt string, yes bool) error {
	if yes {
		return nil
	}
	if !c.io.IsInteractive() {
		return ErrConfirmationRequired
	}

	answer, err := c.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return err
	}
	switch answer {
	case "y", "Y", "yes", "Yes":
		return nil
	}
	return ErrAborted
}
