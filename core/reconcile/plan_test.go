package reconcile

import (
	"testing"

	"loadscreen-export/core/archive"

	"github.com/stretchr/testify/assert"
)

func TestCommit_AppendOnly(t *testing.T) {
	prior := []Record{
		{ID: 1, Name: "Axe", Crc32: 1, Size: 10, FullPath: "a"},
		{ID: 2, Name: "Lina", Crc32: 2, Size: 20, FullPath: "b"},
	}
	snapshot := append([]Record(nil), prior...)

	out := Commit(prior, []Record{
		{ID: 3, Name: "Zeus", Crc32: 3, Size: 30, FullPath: "c"},
		{ID: 9, Name: "Dup of Axe", Crc32: 1, Size: 10, FullPath: "a"},
		{ID: 4, Name: "Zeus again", Crc32: 3, Size: 30, FullPath: "c"},
	})

	assert.Equal(t, snapshot, prior)
	assert.Equal(t, snapshot, out[:2])
	assert.Len(t, out, 3)
	assert.Equal(t, "Zeus", out[2].Name)
}

func TestCommit_SameNameNewChecksum(t *testing.T) {
	prior := []Record{{ID: 1, Name: "Axe", Crc32: 1, Size: 10, FullPath: "a"}}
	out := Commit(prior, []Record{{ID: 1, Name: "Axe", Crc32: 2, Size: 10, FullPath: "a"}})
	assert.Len(t, out, 2)
}

func TestRecord_Matches(t *testing.T) {
	e := archive.Entry{Directory: "panorama/images", FileName: "p1", Extension: "png", CRC32: 111, Length: 50}
	r := Record{Crc32: 111, Size: 50, FullPath: "panorama/images/p1.png"}

	assert.True(t, r.Matches(e))

	e.Length = 51
	assert.False(t, r.Matches(e))
}
