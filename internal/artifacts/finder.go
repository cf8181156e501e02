package artifacts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/smdgithub/hybuild/internal/model"
)

// Platform output patterns, relative to the project root.
const (
	// AndroidPattern matches APKs in Gradle's per-variant output tree,
	// e.g. platforms/android/app/build/outputs/apk/release/app-release.apk.
	AndroidPattern = "platforms/android/app/build/outputs/apk/*/*.apk"

	// IOSPattern matches device IPAs produced by the Xcode build,
	// e.g. platforms/ios/build/device/MyApp.ipa.
	IOSPattern = "platforms/ios/build/device/*.ipa"
)

// FindAppBuilds globs both platform patterns under root and returns all
// matches. The returned slice is empty (not nil-checked by callers) when
// neither platform produced a binary.
func FindAppBuilds(root string) ([]string, error) {
	var found []string
	for _, pattern := range []string{AndroidPattern, IOSPattern} {
		// filepath.Glob only errors on malformed patterns, and ours
		// are constants, but the error is still propagated.
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan for app builds: %w", err)
		}
		found = append(found, matches...)
	}
	return found, nil
}

// CopyBuilds copies each artifact into dest, creating dest if absent.
// File names are preserved; an existing file of the same name in dest
// is overwritten.
func CopyBuilds(builds []string, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to create copy destination %s", dest), err)
	}

	for _, src := range builds {
		target := filepath.Join(dest, filepath.Base(src))
		if err := copyFile(src, target); err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to copy %s to %s", src, target), err)
		}
	}
	return nil
}

// copyFile copies a single regular file, preserving its permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
