// Package bundle parses recitation bundle descriptors.
//
// A bundle is the pair of files a narrator submits for one poem: an mp3
// recording and an xml descriptor produced by the desktop synchronisation
// tool. The descriptor carries the poem reference, attribution text, the
// checksum of the exact mp3 it was synchronised against and the per-verse
// timing offsets.
package bundle

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// GenericTitlePrefix marks descriptor titles the desktop tool generated
// automatically instead of a real poem title. Placement substitutes the poem
// title from the local mirror when it sees this prefix.
const GenericTitlePrefix = "فایل صوتی"

// PoemAudio is one recitation entry of a descriptor file.
type PoemAudio struct {
	PoemID      int        `xml:"PoemId"`
	PoemTitle   string     `xml:"PoemTitle"`
	Description string     `xml:"Description"`
	FilePath    string     `xml:"FilePath"`
	Checksum    string     `xml:"FileCheckSum"`
	SyncGUID    uuid.UUID  `xml:"SyncGuid"`
	Syncs       []SyncInfo `xml:"SyncArray>SyncInfo"`
}

// SyncInfo is one verse timing entry. The wire element is spelled
// AudioMiliseconds by the producing tool.
type SyncInfo struct {
	VerseOrder        int `xml:"VerseOrder"`
	AudioMilliseconds int `xml:"AudioMiliseconds"`
}

// Title returns the display title of the entry, falling back to the
// description when no poem title was recorded.
func (a *PoemAudio) Title() string {
	if a.PoemTitle == "" {
		return a.Description
	}
	return a.PoemTitle
}

// HasGenericTitle reports whether the entry title is an auto-generated
// placeholder rather than a real poem title.
func (a *PoemAudio) HasGenericTitle() bool {
	return strings.HasPrefix(a.Title(), GenericTitlePrefix)
}

// list is the descriptor document root.
type list struct {
	XMLName xml.Name    `xml:"DesktopGanjoorPoemAudioList"`
	Audios  []PoemAudio `xml:"PoemAudio"`
}

// Parse reads descriptor entries from r.
// Descriptors can in principle carry several entries, although the producing
// tool only ever writes one.
func Parse(r io.Reader) ([]PoemAudio, error) {
	var doc list
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}
	if len(doc.Audios) == 0 {
		return nil, fmt.Errorf("descriptor contains no entries")
	}
	return doc.Audios, nil
}

// ParseFile reads descriptor entries from the file at path.
func ParseFile(path string) (_ []PoemAudio, retErr error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = closeErr
		}
	}()

	return Parse(f)
}

// Verse is a poem line used to resolve verse sync entries.
type Verse struct {
	Order int
	Text  string
}

// VerseSync pairs a verse with the audio offset the narrator reaches it at.
type VerseSync struct {
	VerseOrder        int    `json:"verseOrder"`
	VerseText         string `json:"verseText"`
	AudioMilliseconds int    `json:"audioMilliseconds"`
}

// VerseSyncs resolves the timing entries of a descriptor against the poem's
// verses. Descriptor orders are zero-based (negative orders are clamped to
// zero, a known producer quirk) while verses are one-based. Entries that
// reference a verse the poem does not have are dropped.
func VerseSyncs(audio *PoemAudio, verses []Verse) []VerseSync {
	byOrder := make(map[int]string, len(verses))
	for _, v := range verses {
		byOrder[v.Order] = v.Text
	}

	syncs := make([]VerseSync, 0, len(audio.Syncs))
	for _, s := range audio.Syncs {
		order := s.VerseOrder
		if order < 0 {
			order = 0
		}
		order++

		text, ok := byOrder[order]
		if !ok {
			continue
		}

		syncs = append(syncs, VerseSync{
			VerseOrder:        order,
			VerseText:         text,
			AudioMilliseconds: s.AudioMilliseconds,
		})
	}
	return syncs
}
