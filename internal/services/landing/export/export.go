// Package export writes the landing page as a static site.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rotaract-dypcoe/landing/internal/platform/assets/imagecdn"
	platformi18n "github.com/rotaract-dypcoe/landing/internal/platform/i18n"
	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/modules/home"
	landingi18n "github.com/rotaract-dypcoe/landing/internal/services/landing/platform/i18n"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/pagerender"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/static"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/templates"
	"go.uber.org/zap"
)

const (
	indexFile  = "index.html"
	staticDir  = "static"
	imagesDir  = "images"
	fileMode   = 0o644
	dirMode    = 0o755
	staticBase = "static/"
)

// Result summarizes an export.
type Result struct {
	Files []string
}

// Write renders the landing page into outDir. The page has no live stream:
// the carousel script runs its own timer. Images from deps.PublicDir are
// copied when the directory exists.
func Write(ctx context.Context, outDir string, deps module.Dependencies) (Result, error) {
	outDir = strings.TrimSpace(outDir)
	if outDir == "" {
		return Result{}, errors.New("output directory is required")
	}
	if err := os.MkdirAll(outDir, dirMode); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	logger := deps.Log()
	result := Result{}

	page, err := renderIndex(ctx, deps)
	if err != nil {
		return Result{}, err
	}
	if err := writeFile(filepath.Join(outDir, indexFile), page); err != nil {
		return Result{}, err
	}
	result.Files = append(result.Files, indexFile)

	copied, err := copyTree(ctx, static.FS, ".", filepath.Join(outDir, staticDir))
	if err != nil {
		return Result{}, fmt.Errorf("export static assets: %w", err)
	}
	for _, name := range copied {
		result.Files = append(result.Files, path.Join(staticDir, name))
	}

	if dir := strings.TrimSpace(deps.PublicDir); dir != "" {
		info, statErr := os.Stat(dir)
		switch {
		case statErr == nil && info.IsDir():
			copied, err := copyTree(ctx, os.DirFS(dir), ".", filepath.Join(outDir, imagesDir))
			if err != nil {
				return Result{}, fmt.Errorf("export images: %w", err)
			}
			for _, name := range copied {
				result.Files = append(result.Files, path.Join(imagesDir, name))
			}
		case errors.Is(statErr, fs.ErrNotExist):
			logger.Warn("public directory missing, images not exported", zap.String("dir", dir))
		case statErr != nil:
			return Result{}, fmt.Errorf("stat public directory: %w", statErr)
		default:
			return Result{}, fmt.Errorf("public path %q is not a directory", dir)
		}
	}

	logger.Info("landing exported", zap.String("dir", outDir), zap.Int("files", len(result.Files)))
	return result, nil
}

func renderIndex(ctx context.Context, deps module.Dependencies) ([]byte, error) {
	if deps.Images.Local() {
		// Exported pages may be hosted under a sub-path.
		deps.Images = imagecdn.New(imagesDir)
	}
	view, err := home.BuildView(deps, home.ViewOptions{Path: "/"})
	if err != nil {
		return nil, fmt.Errorf("build landing view: %w", err)
	}
	loc := landingi18n.NewLocalizer(platformi18n.DefaultTag())
	var buf bytes.Buffer
	err = pagerender.Render(ctx, &buf, loc, "/", "", pagerender.Page{
		Title:         loc.Sprintf("landing.page_title"),
		Description:   loc.Sprintf("landing.meta_description"),
		Body:          templates.LandingPage(view, loc),
		StaticBase:    staticBase,
		HideLanguages: true,
	})
	if err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}
	return buf.Bytes(), nil
}

func copyTree(ctx context.Context, src fs.FS, root string, dst string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, root, func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if entry.IsDir() {
			return os.MkdirAll(target, dirMode)
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if err := copyFile(src, name, target); err != nil {
			return err
		}
		copied = append(copied, name)
		return nil
	})
	return copied, err
}

func copyFile(src fs.FS, name string, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer in.Close()
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", name, err)
	}
	return out.Close()
}

func writeFile(target string, data []byte) error {
	if err := os.WriteFile(target, data, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
