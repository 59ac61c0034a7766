// Package vpk reads Valve Pak (VPK) directory archives, versions 1 and 2.
//
// Only the directory file ("*_dir.vpk") is parsed up front. Entry data is read
// on demand from the directory file itself (archive index 0x7fff) or from the
// numbered data files next to it ("pak01_000.vpk", "pak01_001.vpk", ...).
// Signature and MD5 sections are not verified.
package vpk

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"loadscreen-export/core/archive"
)

const (
	signature = 0x55aa1234

	headerSizeV1 = 12
	headerSizeV2 = 28

	// dirArchiveIndex marks entries stored inside the directory file.
	dirArchiveIndex = 0x7fff
	entryTerminator = 0xffff
)

// ErrBadSignature is returned for files that are not VPK directories.
var ErrBadSignature = errors.New("vpk: bad signature")

// Package is an opened VPK directory.
type Package struct {
	path       string
	version    uint32
	headerSize uint32
	treeSize   uint32
	entries    map[string][]archive.Entry

	mu    sync.Mutex
	files map[uint16]*os.File
}

var _ archive.Source = (*Package)(nil)

// Open reads the directory tree of the VPK at path.
func Open(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vpk: open %s: %w", path, err)
	}

	p := &Package{
		path:  path,
		files: map[uint16]*os.File{dirArchiveIndex: f},
	}
	if err := p.readDirectory(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("vpk: read %s: %w", path, err)
	}
	return p, nil
}

// Parse reads a directory tree from r. The returned Package can list entries
// but can only read data stored inline (preload bytes); it is meant for tests
// and tools that inspect a tree without its data files.
func Parse(r io.Reader) (*Package, error) {
	p := &Package{files: map[uint16]*os.File{}}
	if err := p.readDirectory(r); err != nil {
		return nil, err
	}
	return p, nil
}

// Version returns the VPK format version.
func (p *Package) Version() uint32 {
	return p.version
}

// Entries returns the entries with the given extension in directory order.
func (p *Package) Entries(extension string) []archive.Entry {
	return p.entries[extension]
}

// Count returns the number of entries in the package.
func (p *Package) Count() int {
	n := 0
	for _, list := range p.entries {
		n += len(list)
	}
	return n
}

// ReadEntry returns the preload bytes followed by the entry data.
func (p *Package) ReadEntry(ctx context.Context, entry archive.Entry) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]byte, entry.TotalLength())
	copy(out, entry.Preload)
	if entry.Length == 0 {
		return out, nil
	}

	f, err := p.dataFile(entry.ArchiveIndex)
	if err != nil {
		return nil, err
	}

	offset := int64(entry.Offset)
	if entry.ArchiveIndex == dirArchiveIndex {
		offset += int64(p.headerSize) + int64(p.treeSize)
	}
	if _, err := f.ReadAt(out[len(entry.Preload):], offset); err != nil {
		return nil, fmt.Errorf("vpk: read %s: %w", entry.FullPath(), err)
	}
	return out, nil
}

// Close releases every open data file.
func (p *Package) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for idx, f := range p.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(p.files, idx)
	}
	return errors.Join(errs...)
}

func (p *Package) dataFile(index uint16) (*os.File, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f, ok := p.files[index]; ok {
		return f, nil
	}
	if p.path == "" {
		return nil, fmt.Errorf("vpk: archive %03d not available", index)
	}

	name := dataFileName(p.path, index)
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("vpk: open data file: %w", err)
	}
	p.files[index] = f
	return f, nil
}

// dataFileName maps "dir/pak01_dir.vpk" and index 3 to "dir/pak01_003.vpk".
func dataFileName(dirPath string, index uint16) string {
	base := strings.TrimSuffix(filepath.Base(dirPath), ".vpk")
	base = strings.TrimSuffix(base, "_dir")
	return filepath.Join(filepath.Dir(dirPath), fmt.Sprintf("%s_%03d.vpk", base, index))
}

func (p *Package) readDirectory(r io.Reader) error {
	var head struct {
		Signature uint32
		Version   uint32
		TreeSize  uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &head); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if head.Signature != signature {
		return ErrBadSignature
	}

	switch head.Version {
	case 1:
		p.headerSize = headerSizeV1
	case 2:
		// FileDataSectionSize, ArchiveMD5SectionSize, OtherMD5SectionSize, SignatureSectionSize
		var rest [4]uint32
		if err := binary.Read(r, binary.LittleEndian, &rest); err != nil {
			return fmt.Errorf("header: %w", err)
		}
		p.headerSize = headerSizeV2
	default:
		return fmt.Errorf("unsupported version %d", head.Version)
	}
	p.version = head.Version
	p.treeSize = head.TreeSize

	tree := make([]byte, head.TreeSize)
	if _, err := io.ReadFull(r, tree); err != nil {
		return fmt.Errorf("tree: %w", err)
	}

	entries, err := parseTree(tree)
	if err != nil {
		return fmt.Errorf("tree: %w", err)
	}
	p.entries = entries
	return nil
}

// parseTree walks the three-level extension / directory / file tree.
func parseTree(tree []byte) (map[string][]archive.Entry, error) {
	rd := bytes.NewReader(tree)
	entries := make(map[string][]archive.Entry)

	for {
		ext, err := readString(rd)
		if err != nil {
			return nil, err
		}
		if ext == "" {
			break
		}
		for {
			dir, err := readString(rd)
			if err != nil {
				return nil, err
			}
			if dir == "" {
				break
			}
			for {
				name, err := readString(rd)
				if err != nil {
					return nil, err
				}
				if name == "" {
					break
				}
				entry, err := readEntry(rd)
				if err != nil {
					return nil, fmt.Errorf("%s/%s.%s: %w", dir, name, ext, err)
				}
				entry.Directory = blank(dir)
				entry.FileName = blank(name)
				entry.Extension = blank(ext)
				entries[entry.Extension] = append(entries[entry.Extension], entry)
			}
		}
	}
	return entries, nil
}

func readEntry(rd *bytes.Reader) (archive.Entry, error) {
	var raw struct {
		CRC          uint32
		PreloadBytes uint16
		ArchiveIndex uint16
		Offset       uint32
		Length       uint32
		Terminator   uint16
	}
	if err := binary.Read(rd, binary.LittleEndian, &raw); err != nil {
		return archive.Entry{}, err
	}
	if raw.Terminator != entryTerminator {
		return archive.Entry{}, fmt.Errorf("bad entry terminator %#x", raw.Terminator)
	}

	entry := archive.Entry{
		CRC32:        raw.CRC,
		Length:       raw.Length,
		ArchiveIndex: raw.ArchiveIndex,
		Offset:       raw.Offset,
	}
	if raw.PreloadBytes > 0 {
		entry.Preload = make([]byte, raw.PreloadBytes)
		if _, err := io.ReadFull(rd, entry.Preload); err != nil {
			return archive.Entry{}, fmt.Errorf("preload: %w", err)
		}
	}
	return entry, nil
}

func readString(rd *bytes.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := rd.ReadByte()
		if err != nil {
			return "", fmt.Errorf("unterminated string: %w", err)
		}
		if b == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// blank maps the single space VPK uses for "no value" to an empty string.
func blank(s string) string {
	if s == " " {
		return ""
	}
	return s
}
