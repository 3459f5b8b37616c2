package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/pakr/internal/core/domain"
	"go.trai.ch/pakr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CopyExecutor = (*Copier)(nil)

// Copier implements ports.CopyExecutor. It materializes regular-file
// payloads at their source-relative path under the destination; directories
// are created as needed, symlinks and other non-regular entries are not
// copied as entries.
type Copier struct {
	hasher ports.Hasher
	logger ports.Logger
}

// NewCopier creates a new Copier.
func NewCopier(hasher ports.Hasher, logger ports.Logger) *Copier {
	return &Copier{hasher: hasher, logger: logger}
}

// ExecuteCopy recursively copies cmd.Source into cmd.Destination. The first
// traversal or I/O error aborts the command; files already copied stay.
func (c *Copier) ExecuteCopy(ctx context.Context, cmd domain.CopyCommand) error {
	info, err := os.Stat(cmd.Source)
	if err != nil || !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "source is not an existing directory"), "source", cmd.Source)
	}

	opts := walkOptions{useRules: cmd.UseIgnoreRules, ignoreFile: cmd.IgnoreFile}
	copied := 0
	err = walkFiles(cmd.Source, opts, func(path, rel string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.copyFile(path, filepath.Join(cmd.Destination, rel)); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "copy aborted"), "source", cmd.Source), "destination", cmd.Destination)
	}

	c.logger.Info(fmt.Sprintf("copied %d file(s) from %s to %s", copied, cmd.Source, cmd.Destination))
	return nil
}

// copyFile copies the byte content of src to dst, creating missing parent
// directories and overwriting an existing destination file. The copied bytes
// are verified against the source digest before the file counts as done.
func (c *Copier) copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", filepath.Dir(dst))
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from the walked source tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // Destination is user configured
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to flush destination file"), "path", dst)
	}

	return c.verify(src, dst)
}

// verify compares content digests of source and destination.
func (c *Copier) verify(src, dst string) error {
	srcSum, err := c.hasher.ComputeFileHash(src)
	if err != nil {
		return err
	}
	dstSum, err := c.hasher.ComputeFileHash(dst)
	if err != nil {
		return err
	}
	if srcSum != dstSum {
		return zerr.With(zerr.With(zerr.New("copied content does not match source"), "source", src), "destination", dst)
	}
	return nil
}
