package bundle_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/bundle"
)

const descriptorXML = `<?xml version="1.0" encoding="utf-8"?>
<DesktopGanjoorPoemAudioList>
  <PoemAudio>
    <PoemId>1209</PoemId>
    <PoemTitle>غزل شمارهٔ ۱</PoemTitle>
    <Description>خوانش نمونه</Description>
    <FilePath>C:\audio\1209.mp3</FilePath>
    <FileCheckSum>5eb63bbbe01eeed093cb22bb8f5acdc3</FileCheckSum>
    <SyncGuid>7c9e6679-7425-40de-944b-e07fc1f90ae7</SyncGuid>
    <SyncArray>
      <SyncInfo>
        <VerseOrder>0</VerseOrder>
        <AudioMiliseconds>1500</AudioMiliseconds>
      </SyncInfo>
      <SyncInfo>
        <VerseOrder>1</VerseOrder>
        <AudioMiliseconds>6200</AudioMiliseconds>
      </SyncInfo>
    </SyncArray>
  </PoemAudio>
</DesktopGanjoorPoemAudioList>`

func TestParse(t *testing.T) {
	t.Run("ParsesSingleEntry", func(t *testing.T) {
		audios, err := bundle.Parse(strings.NewReader(descriptorXML))
		require.NoError(t, err)
		require.Len(t, audios, 1)

		a := audios[0]
		assert.Equal(t, 1209, a.PoemID)
		assert.Equal(t, "غزل شمارهٔ ۱", a.PoemTitle)
		assert.Equal(t, "خوانش نمونه", a.Description)
		assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", a.Checksum)
		assert.Equal(t, uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7"), a.SyncGUID)

		require.Len(t, a.Syncs, 2)
		assert.Equal(t, 0, a.Syncs[0].VerseOrder)
		assert.Equal(t, 1500, a.Syncs[0].AudioMilliseconds)
		assert.Equal(t, 1, a.Syncs[1].VerseOrder)
		assert.Equal(t, 6200, a.Syncs[1].AudioMilliseconds)
	})

	t.Run("RejectsEmptyDocument", func(t *testing.T) {
		_, err := bundle.Parse(strings.NewReader(`<DesktopGanjoorPoemAudioList></DesktopGanjoorPoemAudioList>`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no entries")
	})

	t.Run("RejectsMalformedXML", func(t *testing.T) {
		_, err := bundle.Parse(strings.NewReader(`<DesktopGanjoorPoemAudioList><PoemAudio>`))
		require.Error(t, err)
	})
}

func TestParseFile(t *testing.T) {
	t.Run("ReadsFromDisk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "1209.xml")
		require.NoError(t, os.WriteFile(path, []byte(descriptorXML), 0600))

		audios, err := bundle.ParseFile(path)
		require.NoError(t, err)
		require.Len(t, audios, 1)
		assert.Equal(t, 1209, audios[0].PoemID)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := bundle.ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
		require.Error(t, err)
	})
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		audio    bundle.PoemAudio
		expected string
		generic  bool
	}{
		{
			name:     "poem title preferred",
			audio:    bundle.PoemAudio{PoemTitle: "غزل شمارهٔ ۱", Description: "توضیح"},
			expected: "غزل شمارهٔ ۱",
		},
		{
			name:     "description used when title empty",
			audio:    bundle.PoemAudio{Description: "توضیح"},
			expected: "توضیح",
		},
		{
			name:     "auto-generated placeholder detected",
			audio:    bundle.PoemAudio{PoemTitle: bundle.GenericTitlePrefix + " ۱۲۰۹"},
			expected: bundle.GenericTitlePrefix + " ۱۲۰۹",
			generic:  true,
		},
		{
			name:     "placeholder in description detected",
			audio:    bundle.PoemAudio{Description: bundle.GenericTitlePrefix},
			expected: bundle.GenericTitlePrefix,
			generic:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.audio.Title())
			assert.Equal(t, tt.generic, tt.audio.HasGenericTitle())
		})
	}
}

func TestVerseSyncs(t *testing.T) {
	verses := []bundle.Verse{
		{Order: 1, Text: "بیت نخست"},
		{Order: 2, Text: "بیت دوم"},
	}

	t.Run("ZeroBasedOrdersShiftToOneBased", func(t *testing.T) {
		audio := &bundle.PoemAudio{Syncs: []bundle.SyncInfo{
			{VerseOrder: 0, AudioMilliseconds: 1500},
			{VerseOrder: 1, AudioMilliseconds: 6200},
		}}

		syncs := bundle.VerseSyncs(audio, verses)
		require.Len(t, syncs, 2)
		assert.Equal(t, 1, syncs[0].VerseOrder)
		assert.Equal(t, "بیت نخست", syncs[0].VerseText)
		assert.Equal(t, 1500, syncs[0].AudioMilliseconds)
		assert.Equal(t, 2, syncs[1].VerseOrder)
	})

	t.Run("NegativeOrderClampsToFirstVerse", func(t *testing.T) {
		audio := &bundle.PoemAudio{Syncs: []bundle.SyncInfo{
			{VerseOrder: -1, AudioMilliseconds: 100},
		}}

		syncs := bundle.VerseSyncs(audio, verses)
		require.Len(t, syncs, 1)
		assert.Equal(t, 1, syncs[0].VerseOrder)
	})

	t.Run("UnknownVersesDropped", func(t *testing.T) {
		audio := &bundle.PoemAudio{Syncs: []bundle.SyncInfo{
			{VerseOrder: 10, AudioMilliseconds: 100},
		}}

		syncs := bundle.VerseSyncs(audio, verses)
		assert.Empty(t, syncs)
	})
}
