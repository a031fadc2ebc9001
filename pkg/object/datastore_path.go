package object

import (
	"fmt"
	"strings"
)

// DatastorePath locates a file or directory inside a datastore as
// "volume name + slash-separated relative path".
//
// The canonical textual form encloses the datastore name in square brackets,
// separated from the relative path by exactly one space:
//
//	"[datastore1] _base/foo/foo.vmdk"
//	"[datastore1]"                      (the volume root)
//
// Paths always use forward slashes regardless of host platform, and the
// relative path never starts with a slash. A path references its datastore
// by name only; it does not hold a live Datastore handle, so paths can be
// built and parsed without touching the inventory.
//
// DatastorePath is a comparable value: two paths are equal under == exactly
// when their datastore names and relative paths are equal. Every
// mutating-looking operation (Join, Parent) returns a new value.
type DatastorePath struct {
	datastoreName string
	relPath       string
}

// NewDatastorePath builds a path rooted at the named datastore.
//
// The components are joined with slash-join semantics: adjacent non-empty
// components are separated by exactly one slash, empty components contribute
// nothing, and a component starting with a slash discards everything
// accumulated before it. "." and ".." are kept literally, never resolved.
//
// Fails with ErrInvalidArgument when datastoreName is empty.
func NewDatastorePath(datastoreName string, components ...string) (DatastorePath, error) {
	if datastoreName == "" {
		return DatastorePath{}, fmt.Errorf("%w: datastore name cannot be empty", ErrInvalidArgument)
	}
	return DatastorePath{
		datastoreName: datastoreName,
		relPath:       joinRelPath(components...),
	}, nil
}

// ParseDatastorePath parses the canonical bracketed form back into a path.
//
// The datastore name runs from the first '[' to the first following ']';
// the remainder, with surrounding whitespace trimmed, is the relative path.
// A missing ']' makes the whole remainder the datastore name. Fails with
// ErrInvalidArgument when the input is empty, when no '[' is present, or
// when the extracted datastore name is empty.
func ParseDatastorePath(datastorePath string) (DatastorePath, error) {
	if datastorePath == "" {
		return DatastorePath{}, fmt.Errorf("%w: datastore path cannot be empty", ErrInvalidArgument)
	}

	_, remainder, found := strings.Cut(datastorePath, "[")
	if !found {
		return DatastorePath{}, fmt.Errorf("%w: malformed datastore path %q: missing '['", ErrInvalidArgument, datastorePath)
	}

	name, relPath, found := strings.Cut(remainder, "]")
	if !found {
		// No closing bracket: the whole remainder names the datastore.
		name, relPath = remainder, ""
	}
	return NewDatastorePath(name, strings.TrimSpace(relPath))
}

// Datastore returns the owning datastore's name.
func (p DatastorePath) Datastore() string {
	return p.datastoreName
}

// RelPath returns the stored relative path. Empty means the volume root.
func (p DatastorePath) RelPath() string {
	return p.relPath
}

// Join returns a new path with the components appended under this one,
// using the same join semantics as NewDatastorePath. With no components the
// receiver is returned unchanged.
func (p DatastorePath) Join(components ...string) DatastorePath {
	if len(components) == 0 {
		return p
	}
	segments := make([]string, 0, len(components)+1)
	segments = append(segments, p.relPath)
	segments = append(segments, components...)
	return DatastorePath{
		datastoreName: p.datastoreName,
		relPath:       joinRelPath(segments...),
	}
}

// Parent returns the path of the containing directory. The parent of the
// volume root is the volume root itself.
func (p DatastorePath) Parent() DatastorePath {
	return DatastorePath{
		datastoreName: p.datastoreName,
		relPath:       dirName(p.relPath),
	}
}

// Basename returns the final segment of the relative path.
func (p DatastorePath) Basename() string {
	return baseName(p.relPath)
}

// Dirname returns the directory portion of the relative path.
func (p DatastorePath) Dirname() string {
	return dirName(p.relPath)
}

// String renders the canonical bracketed form. The output round-trips
// through ParseDatastorePath.
func (p DatastorePath) String() string {
	if p.relPath == "" {
		return "[" + p.datastoreName + "]"
	}
	return "[" + p.datastoreName + "] " + p.relPath
}

// joinRelPath joins components with POSIX-style semantics and strips any
// leading slashes so the result is always relative to the volume root.
//
// A component starting with '/' resets the accumulation, matching POSIX
// join behavior where a later absolute component discards everything before
// it. "." and ".." are preserved literally.
func joinRelPath(components ...string) string {
	joined := ""
	for _, component := range components {
		switch {
		case component == "":
			// Contributes neither content nor separator.
		case strings.HasPrefix(component, "/"):
			joined = component
		case joined == "" || strings.HasSuffix(joined, "/"):
			joined += component
		default:
			joined += "/" + component
		}
	}
	return strings.TrimLeft(joined, "/")
}

// dirName is POSIX dirname over slash-separated paths: everything up to the
// final slash-delimited segment. A path with no slash has dirname "".
func dirName(path string) string {
	i := strings.LastIndexByte(path, '/') + 1
	head := path[:i]
	if head != "" && strings.Trim(head, "/") != "" {
		head = strings.TrimRight(head, "/")
	}
	return head
}

// baseName is POSIX basename over slash-separated paths: the final
// slash-delimited segment. The basename of "" is "".
func baseName(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}
