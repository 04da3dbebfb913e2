package service

import (
	"archive/zip"
	"compress/flate"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/platform/logger"
	"github.com/uismith/uismith-api/internal/store"
)

// ArchiveFileName is the name of the archive served to clients.
const ArchiveFileName = "component.zip"

// workspacePrefix namespaces export workspaces inside the export
// directory.
const workspacePrefix = "uismith-export"

// ExportService packages a stored component for download.
type ExportService interface {
	// Export materializes the component's files in a temporary
	// workspace, bundles them into a zip archive, and returns a handle
	// for streaming it. Returns store.ErrComponentNotFound if the
	// component does not exist (no workspace is created in that case);
	// any other failure wraps ErrExportFailed and leaves no workspace
	// behind.
	//
	// The caller must Close the returned Archive once the transfer
	// finished (or failed); Close removes the workspace.
	Export(ctx context.Context, componentID uuid.UUID) (*Archive, error)
}

// Archive is a handle to a finished export archive inside its temporary
// workspace. It owns the workspace directory exclusively; no other export
// invocation writes into it.
type Archive struct {
	path      string
	workspace string
	size      int64
	logger    *slog.Logger
}

// Size returns the archive size in bytes.
func (a *Archive) Size() int64 {
	return a.size
}

// WriteTo streams the archive file to w.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	defer func() { _ = f.Close() }()

	return io.Copy(w, f)
}

// Close removes the workspace directory, including the archive. Removal
// errors are logged but never returned: by the time Close runs the client
// has already received (or failed to receive) the archive, so there is
// nothing useful to surface.
func (a *Archive) Close() error {
	if err := os.RemoveAll(a.workspace); err != nil {
		a.logger.Error("failed to remove export workspace",
			slog.String("error", err.Error()),
			slog.String("workspace", a.workspace))
	}
	return nil
}

// exportService is the default ExportService implementation.
type exportService struct {
	componentStore store.ComponentStore
	exportDir      string
	logger         *slog.Logger
}

// NewExportService creates an ExportService that stages workspaces under
// exportDir. An empty exportDir means the operating system's temp
// directory.
func NewExportService(
	componentStore store.ComponentStore,
	exportDir string,
	log *slog.Logger,
) (ExportService, error) {
	if componentStore == nil {
		return nil, errors.New("component store cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if exportDir == "" {
		exportDir = os.TempDir()
	}

	return &exportService{
		componentStore: componentStore,
		exportDir:      exportDir,
		logger:         log.With(slog.String("component", "export_service")),
	}, nil
}

// Export implements ExportService.Export.
func (s *exportService) Export(ctx context.Context, componentID uuid.UUID) (*Archive, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Load before touching the filesystem so an unknown ID creates no
	// workspace.
	component, err := s.componentStore.GetByID(ctx, componentID)
	if err != nil {
		return nil, err
	}

	// The random suffix keeps concurrent exports of the same component
	// from racing on one directory; the component ID keeps workspaces
	// attributable when inspecting the export directory.
	workspace := filepath.Join(s.exportDir,
		fmt.Sprintf("%s-%s-%s", workspacePrefix, componentID, uuid.NewString()))

	if err := os.MkdirAll(workspace, 0o750); err != nil {
		return nil, fmt.Errorf("%w: failed to create workspace: %w", ErrExportFailed, err)
	}

	archive, err := s.buildArchive(component.ExportName(), component.JSX, component.CSS, workspace)
	if err != nil {
		// Failed exports must not leak their workspace.
		if rmErr := os.RemoveAll(workspace); rmErr != nil {
			log.Error("failed to remove export workspace after error",
				slog.String("error", rmErr.Error()),
				slog.String("workspace", workspace))
		}
		log.Error("failed to build export archive",
			slog.String("error", err.Error()),
			slog.String("component_id", componentID.String()))
		return nil, err
	}

	log.Info("export archive built",
		slog.String("component_id", componentID.String()),
		slog.Int64("archive_bytes", archive.size))

	archive.logger = log
	return archive, nil
}

// buildArchive writes the component files into the workspace and bundles
// them into a zip archive at maximum compression.
func (s *exportService) buildArchive(name, jsx, css, workspace string) (*Archive, error) {
	jsPath := filepath.Join(workspace, name+".js")
	cssPath := filepath.Join(workspace, name+".css")

	if err := os.WriteFile(jsPath, []byte(jsx), 0o640); err != nil {
		return nil, fmt.Errorf("%w: failed to write component file: %w", ErrExportFailed, err)
	}
	if err := os.WriteFile(cssPath, []byte(css), 0o640); err != nil {
		return nil, fmt.Errorf("%w: failed to write stylesheet file: %w", ErrExportFailed, err)
	}

	archivePath := filepath.Join(workspace, ArchiveFileName)
	out, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create archive file: %w", ErrExportFailed, err)
	}

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	for _, path := range []string{jsPath, cssPath} {
		if err := addFile(zw, path); err != nil {
			_ = zw.Close()
			_ = out.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("%w: failed to finalize archive: %w", ErrExportFailed, err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to flush archive: %w", ErrExportFailed, err)
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat archive: %w", ErrExportFailed, err)
	}

	return &Archive{
		path:      archivePath,
		workspace: workspace,
		size:      info.Size(),
	}, nil
}

// addFile copies one workspace file into the archive under its base name.
func addFile(zw *zip.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", ErrExportFailed, filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	entry, err := zw.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("%w: failed to create archive entry: %w", ErrExportFailed, err)
	}

	if _, err := io.Copy(entry, f); err != nil {
		return fmt.Errorf("%w: failed to compress %s: %w", ErrExportFailed, filepath.Base(path), err)
	}

	return nil
}
