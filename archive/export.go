package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// layoutPrefixes are the known export layouts, tried in order: data directly
// under the root (older exports), or wrapped in a your_instagram_activity
// directory (newer exports). Keeping them as data makes the fallback visible
// instead of burying it in control flow.
var layoutPrefixes = [][]string{
	nil,
	{"your_instagram_activity"},
}

const conversationFileName = "message_1.json"

var inboxSegments = []string{"messages", "inbox"}

// Export is a handle to one decompressed Instagram data export. It only ever
// reads; the export tree is treated as immutable for the life of the process.
type Export struct {
	root string
}

// Open validates that root looks like an Instagram export (a conversation
// inbox, a login-history file, or a personal-information file under one of
// the known layouts) and returns a handle to it.
func Open(root string) (*Export, error) {
	if root == "" {
		return nil, errors.New("archive.Open: root is empty")
	}
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: root}
		}
		return nil, fmt.Errorf("archive.Open: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("archive.Open: %s is not a directory", root)
	}

	e := &Export{root: root}
	markers := [][]string{
		inboxSegments,
		{"login_and_account_creation", "login_activity.json"},
		{"personal_information", "personal_information", "personal_information.json"},
	}
	for _, prefix := range layoutPrefixes {
		for _, marker := range markers {
			parts := append([]string{root}, prefix...)
			parts = append(parts, marker...)
			if _, err := os.Stat(filepath.Join(parts...)); err == nil {
				return e, nil
			}
		}
	}
	return nil, &NotFoundError{
		Path: root,
		Hint: "no conversation inbox, login history, or personal information found; is this the root of a decompressed Instagram export?",
	}
}

// Root returns the export root path.
func (e *Export) Root() string { return e.root }

// LoadJSON reads the JSON file at root/<layout>/<segments...>/<file>, trying
// each known layout prefix in order. It returns the raw bytes after
// validating them as JSON.
func (e *Export) LoadJSON(segments []string, file string) ([]byte, error) {
	var firstPath string
	for _, prefix := range layoutPrefixes {
		parts := append([]string{e.root}, prefix...)
		parts = append(parts, segments...)
		parts = append(parts, file)
		path := filepath.Join(parts...)
		if firstPath == "" {
			firstPath = path
		}
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("archive: read %s: %w", path, err)
		}
		if !json.Valid(b) {
			return nil, &MalformedDataError{Path: path, Err: errors.New("not valid JSON")}
		}
		return b, nil
	}
	return nil, &NotFoundError{Path: firstPath}
}

// ListConversations enumerates the inbox directory and returns the
// conversation folder names, sorted so that every full-corpus scan sees the
// same order regardless of filesystem quirks.
func (e *Export) ListConversations() ([]string, error) {
	var firstPath string
	for _, prefix := range layoutPrefixes {
		parts := append([]string{e.root}, prefix...)
		parts = append(parts, inboxSegments...)
		path := filepath.Join(parts...)
		if firstPath == "" {
			firstPath = path
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("archive: list inbox %s: %w", path, err)
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)
		return names, nil
	}
	return nil, &NotFoundError{Path: firstPath}
}

// ResolveConversation maps a name fragment to the inbox folder it identifies.
// An exact folder name wins outright; otherwise the fragment is matched as a
// case-sensitive prefix. Zero matches is a NotFoundError with guidance, and
// more than one prefix match is an AmbiguousMatchError rather than a silent
// first-match pick.
func (e *Export) ResolveConversation(fragment string) (string, error) {
	names, err := e.ListConversations()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, name := range names {
		if name == fragment {
			return name, nil
		}
		if len(name) >= len(fragment) && name[:len(fragment)] == fragment {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return "", &NotFoundError{
			Path: fragment,
			Hint: "Instagram sometimes exports the display name instead of the handle, so try both. There is currently no chat history matching this name.",
		}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousMatchError{Fragment: fragment, Matches: matches}
	}
}

// Messages loads the messages of the conversation identified by fragment, in
// the on-disk order (newest first).
func (e *Export) Messages(fragment string) ([]Message, error) {
	folder, err := e.ResolveConversation(fragment)
	if err != nil {
		return nil, err
	}

	segments := append(append([]string{}, inboxSegments...), folder)
	raw, err := e.LoadJSON(segments, conversationFileName)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Messages *[]Message `json:"messages"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &MalformedDataError{Path: filepath.Join(folder, conversationFileName), Err: err}
	}
	if payload.Messages == nil {
		return nil, &MalformedDataError{
			Path: filepath.Join(folder, conversationFileName),
			Err:  errors.New("missing messages array"),
		}
	}
	return *payload.Messages, nil
}
