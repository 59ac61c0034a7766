package archive

import (
	"path"
	"strings"
)

// Entry is the metadata of one file stored in the archive.
// The exporter treats CRC32, Length and FullPath as opaque comparison keys.
type Entry struct {
	// Directory is the slash separated directory, empty for the root.
	Directory string `json:"directory"`
	// FileName is the file name without extension.
	FileName string `json:"file_name"`
	// Extension is the file extension without the leading dot.
	Extension string `json:"extension"`
	// CRC32 is the checksum of the complete file as recorded by the archive.
	CRC32 uint32 `json:"crc32"`
	// Length is the number of bytes stored in the archive data section.
	Length uint32 `json:"length"`
	// ArchiveIndex selects the data file holding the entry.
	ArchiveIndex uint16 `json:"archive_index"`
	// Offset is the position of the entry inside its data file.
	Offset uint32 `json:"offset"`
	// Preload holds bytes stored inline in the directory tree.
	Preload []byte `json:"-"`
}

// FullPath returns "directory/file.ext".
func (e Entry) FullPath() string {
	name := e.FileName
	if e.Extension != "" {
		name += "." + e.Extension
	}
	if e.Directory == "" {
		return name
	}
	return path.Join(e.Directory, name)
}

// TotalLength is the size of the file once preload bytes and data are joined.
func (e Entry) TotalLength() int {
	return len(e.Preload) + int(e.Length)
}

// TrimmedPath returns FullPath without prefix. Entries outside prefix keep
// their full path.
func (e Entry) TrimmedPath(prefix string) string {
	return strings.TrimPrefix(e.FullPath(), prefix)
}
