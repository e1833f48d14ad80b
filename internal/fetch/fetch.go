package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	getter "github.com/hashicorp/go-getter"
)

// DefaultSource is the database directory of the server repository.
const DefaultSource = "git::https://github.com/sp-tarkov/server.git//project/assets/database"

// Fetch downloads the directory at src into dst, replacing any previous
// contents of dst.
func Fetch(ctx context.Context, log *slog.Logger, dst, src string) error {
	if dst == "" {
		return errors.New("output dir path required")
	}
	if src == "" {
		return errors.New("source url required")
	}

	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clear %s: %w", dst, err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	log.Info("start downloading database", "source", src, "dst", dst)

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeDir,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("download %s: %w", src, err)
	}

	log.Info("done downloading database", "dst", dst)
	return nil
}
