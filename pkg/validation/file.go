package validation

import (
	"path/filepath"
	"strings"

	"herdcore/pkg/domain"
)

// FileUpload validates uploaded-file metadata against the allow-list for the
// declared purpose. The engine only ever sees name, mimetype, and size; file
// contents and storage are the caller's concern.
func (e *Engine) FileUpload(file *domain.FileUpload, kind domain.FileKind) domain.Result {
	var res domain.Result
	if file == nil {
		res.Errorf("file metadata is required")
		e.record(KindFile, res)
		return res
	}
	if _, ok := domain.KnownFileKinds[kind]; !ok {
		res.Errorf("unknown file kind %q", kind)
		e.record(KindFile, res)
		return res
	}

	name := strings.TrimSpace(file.OriginalName)
	if name == "" {
		res.Errorf("file name is required")
	} else if len(name) > e.limits.FileNameMaxLen {
		res.Errorf("file name must be at most %d characters", e.limits.FileNameMaxLen)
	}

	if file.SizeBytes < 1 {
		res.Errorf("file is empty")
	} else if file.SizeBytes > e.limits.MaxFileSizeBytes {
		res.Errorf("file exceeds the maximum size of %d bytes", e.limits.MaxFileSizeBytes)
	}

	mimetype := strings.ToLower(strings.TrimSpace(file.Mimetype))
	if mimetype == "" {
		res.Errorf("file mimetype is required")
		e.record(KindFile, res)
		return res
	}
	if !contains(e.limits.AllowedMimetypes[kind], mimetype) {
		res.Errorf("mimetype %q is not allowed for %s uploads", mimetype, kind)
		e.record(KindFile, res)
		return res
	}

	// Cross-check the declared mimetype against the filename extension when
	// the mapping is known.
	if extensions := e.limits.MimeExtensions[mimetype]; len(extensions) > 0 && name != "" {
		ext := strings.ToLower(filepath.Ext(name))
		if !contains(extensions, ext) {
			res.Errorf("file extension %q does not match mimetype %q", ext, mimetype)
		}
	}

	e.record(KindFile, res)
	return res
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
