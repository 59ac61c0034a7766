package reconcile

import (
	"testing"

	"loadscreen-export/core/archive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(dir, name, ext string, crc, length uint32) archive.Entry {
	return archive.Entry{Directory: dir, FileName: name, Extension: ext, CRC32: crc, Length: length}
}

func TestBuildPlan_SingleExport(t *testing.T) {
	items := []Item{{ID: 1, Name: "A", Type: "loading_screen", Path: "p1"}}
	entries := []archive.Entry{entry("panorama/images", "p1", "png", 111, 50)}

	plan, err := BuildPlan(items, entries, nil, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, plan.Work, 1)
	assert.Equal(t, "A", plan.Work[0].Item.Name)
	assert.Equal(t, "panorama/images/p1.png", plan.Work[0].Entry.FullPath())
	assert.Equal(t, Summary{TotalItems: 1, Export: 1}, plan.Summary)

	records := Commit(nil, []Record{NewRecord(plan.Work[0], "out/A.jpeg")})
	require.Len(t, records, 1)
	assert.Equal(t, Record{
		ID:        1,
		Name:      "A",
		ImageLink: "out/A.jpeg",
		Crc32:     111,
		Size:      50,
		FullPath:  "panorama/images/p1.png",
	}, records[0])
}

func TestBuildPlan_Idempotent(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Axe", Path: "loadingscreens/axe"},
		{ID: 2, Name: "Lina", Path: "loadingscreens/lina"},
	}
	entries := []archive.Entry{
		entry("panorama/images/loadingscreens/axe", "axe_png", "vtex_c", 1, 10),
		entry("panorama/images/loadingscreens/lina", "lina_png", "vtex_c", 2, 20),
	}

	first, err := BuildPlan(items, entries, nil, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, first.Work, 2)

	var exported []Record
	for _, w := range first.Work {
		exported = append(exported, NewRecord(w, w.Item.Name+".jpeg"))
	}
	records := Commit(nil, exported)

	second, err := BuildPlan(items, entries, records, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, second.Work)
	assert.Equal(t, 2, second.Summary.Skip)
	assert.Equal(t, records, Commit(records, nil))
}

func TestBuildPlan_ChangedChecksumExportsAgain(t *testing.T) {
	items := []Item{{ID: 1, Name: "Axe", Path: "loadingscreens/axe"}}
	old := entry("panorama/images/loadingscreens/axe", "axe_png", "vtex_c", 1, 10)
	prior := []Record{NewRecord(WorkItem{Item: items[0], Entry: old}, "Axe.jpeg")}

	updated := old
	updated.CRC32 = 99

	plan, err := BuildPlan(items, []archive.Entry{updated}, prior, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, plan.Work, 1)
	assert.Equal(t, uint32(99), plan.Work[0].Entry.CRC32)

	records := Commit(prior, []Record{NewRecord(plan.Work[0], "Axe.jpeg")})
	require.Len(t, records, 2)
	assert.Equal(t, prior[0], records[0])
}

func TestBuildPlan_NotFound(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Ghost", Path: "loadingscreens/ghost"},
		{ID: 2, Name: "Empty", Path: ""},
	}
	entries := []archive.Entry{entry("panorama/images/loadingscreens/axe", "axe_png", "vtex_c", 1, 10)}

	plan, err := BuildPlan(items, entries, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, plan.Work)
	assert.Equal(t, 2, plan.Summary.NotFound)
	assert.Equal(t, items, plan.NotFound)
	assert.Equal(t, StatusNotFound, plan.Results[1].Status)
}

func TestLocate_MatchesPathBelowPrefix(t *testing.T) {
	entries := []archive.Entry{
		entry("panorama/images/loadingscreens_ti/aegis", "aegis_png", "vtex_c", 1, 10),
		entry("panorama/images/console/loadingscreens/axe", "axe_png", "vtex_c", 2, 20),
		entry("panorama/images/loadingscreens/axe", "axe_png", "vtex_c", 3, 30),
	}

	got, n, err := Locate(Item{ID: 1, Path: "loadingscreens_ti/aegis"}, entries, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint32(1), got.CRC32)

	// an unnormalized console path resolves below panorama/images/console
	got, n, err = Locate(Item{ID: 2, Name: "Axe Classic", Path: "console/loadingscreens/axe"}, entries, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint32(2), got.CRC32)

	_, n, err = Locate(Item{ID: 3}, entries, DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBuildPlan_IgnoresEntriesOutsidePrefix(t *testing.T) {
	items := []Item{{ID: 1, Name: "Axe", Path: "loadingscreens/axe"}}
	entries := []archive.Entry{entry("materials/loadingscreens/axe", "axe", "vtex_c", 1, 10)}

	plan, err := BuildPlan(items, entries, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Summary.NotFound)
}

func TestBuildPlan_WorkSortedByName(t *testing.T) {
	items := []Item{
		{ID: 3, Name: "lina", Path: "c"},
		{ID: 1, Name: "Zeus", Path: "a"},
		{ID: 2, Name: "Axe", Path: "b"},
		{ID: 4, Name: "Axe", Path: "d"},
	}
	entries := []archive.Entry{
		entry("panorama/images", "a", "png", 1, 1),
		entry("panorama/images", "b", "png", 2, 2),
		entry("panorama/images", "c", "png", 3, 3),
		entry("panorama/images", "d", "png", 4, 4),
	}

	plan, err := BuildPlan(items, entries, nil, DefaultOptions())
	require.NoError(t, err)

	var ids []int
	for _, w := range plan.Work {
		ids = append(ids, w.Item.ID)
	}
	// ordinal: upper case sorts before lower case, equal names keep input order
	assert.Equal(t, []int{2, 4, 1, 3}, ids)
}

func TestLocate_TieBreak(t *testing.T) {
	item := Item{ID: 7, Name: "Axe", Path: "loadingscreens/axe"}
	entries := []archive.Entry{
		entry("panorama/images/loadingscreens/axe_arcana", "axe_png", "vtex_c", 1, 1),
		entry("panorama/images/loadingscreens/axe", "b_png", "vtex_c", 2, 2),
		entry("panorama/images/loadingscreens/axe", "a_png", "vtex_c", 3, 3),
	}

	tests := []struct {
		name     string
		mode     TieBreak
		expected string
		err      error
	}{
		{name: "shortest then lexicographic", mode: TieBreakShortest, expected: "panorama/images/loadingscreens/axe/a_png.vtex_c"},
		{name: "first in archive order", mode: TieBreakFirst, expected: "panorama/images/loadingscreens/axe_arcana/axe_png.vtex_c"},
		{name: "error", mode: TieBreakError, err: ErrAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := Locate(item, entries, Options{DirPrefix: DefaultDirPrefix, TieBreak: tt.mode})
			assert.Equal(t, 3, n)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				var amb *AmbiguousMatchError
				require.ErrorAs(t, err, &amb)
				assert.Len(t, amb.Candidates, 3)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.FullPath())
		})
	}
}

func TestBuildPlan_AmbiguousCounted(t *testing.T) {
	items := []Item{{ID: 1, Name: "Axe", Path: "x"}}
	entries := []archive.Entry{
		entry("panorama/images", "x1", "png", 1, 1),
		entry("panorama/images", "x2", "png", 2, 2),
	}

	plan, err := BuildPlan(items, entries, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Summary.Ambiguous)
	assert.Equal(t, 2, plan.Results[0].Candidates)

	_, err = BuildPlan(items, entries, nil, Options{DirPrefix: DefaultDirPrefix, TieBreak: TieBreakError})
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func TestClassify_Independent(t *testing.T) {
	entries := []archive.Entry{entry("panorama/images", "a", "png", 1, 1)}
	a := Item{ID: 1, Name: "A", Path: "a"}
	b := Item{ID: 2, Name: "B", Path: "zzz"}

	alone, err := Classify(a, entries, NewIndex(nil), DefaultOptions())
	require.NoError(t, err)

	plan, err := BuildPlan([]Item{b, a, b}, entries, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, alone, plan.Results[1])
}
