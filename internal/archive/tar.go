// Package archive packs and unpacks the flat tar files submissions
// arrive in. Member paths are flattened to basenames on extraction so
// a submitter's local directory layout never leaks into scoring.
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks regular members whose names end in suffix into dir,
// flattening member paths to their basenames. An empty suffix extracts
// every regular member.
func Extract(dir, tarPath, suffix string) error {
	f, err := os.Open(tarPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tr := tar.NewReader(f)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read archive %s: %w", tarPath, err)
		}
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(hdr.Name, suffix) {
			continue
		}
		if err := writeMember(filepath.Join(dir, filepath.Base(hdr.Name)), tr); err != nil {
			return fmt.Errorf("extract %s: %w", hdr.Name, err)
		}
	}
}

func writeMember(path string, r io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Tar packs every regular file directly inside dir into tarPath
// without the directory prefix.
func Tar(dir, tarPath string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	f, err := os.Create(tarPath)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(f)

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := addMember(tw, dir, entry.Name()); err != nil {
			_ = tw.Close()
			_ = f.Close()
			return err
		}
	}

	if err := tw.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func addMember(tw *tar.Writer, dir, name string) error {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	_, err = io.Copy(tw, in)
	return err
}

// NPYExtractor extracts only .npy members; it satisfies the scoring
// pipeline's Extractor collaborator.
type NPYExtractor struct{}

func (NPYExtractor) Extract(tarPath, dir string) error {
	return Extract(dir, tarPath, ".npy")
}
