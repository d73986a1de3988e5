package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"main/model"
)

func newNotesService() (*NotesService, *fakeNotesStore, *fakeTagsStore, *fakeUsersStore) {
	notes := newFakeNotesStore()
	tags := newFakeTagsStore()
	users := newFakeUsersStore()
	svc := &NotesService{NotesRepo: notes, TagsRepo: tags, UsersRepo: users}
	return svc, notes, tags, users
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToPrivate", func(t *testing.T) {
		svc, _, _, _ := newNotesService()
		note, err := svc.CreateNote(ctx, "author-1", "my note", nil)
		if err != nil {
			t.Fatal("create note failed", err)
		}
		if !note.Private {
			t.Error("expected new note to default to private")
		}
		if note.Archived {
			t.Error("expected new note to start unarchived")
		}
		if note.AuthorID != "author-1" {
			t.Errorf("expected author author-1, got %s", note.AuthorID)
		}
	})

	t.Run("ExplicitVisibility", func(t *testing.T) {
		svc, _, _, _ := newNotesService()
		private := false
		note, err := svc.CreateNote(ctx, "author-1", "shared note", &private)
		if err != nil {
			t.Fatal("create note failed", err)
		}
		if note.Private {
			t.Error("expected note to be public")
		}
	})

	t.Run("MissingText", func(t *testing.T) {
		svc, notes, _, _ := newNotesService()
		_, err := svc.CreateNote(ctx, "author-1", "   ", nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(notes.notes) != 0 {
			t.Error("no note should be stored on validation failure")
		}
	})

	t.Run("TextTooLong", func(t *testing.T) {
		svc, _, _, _ := newNotesService()
		_, err := svc.CreateNote(ctx, "author-1", strings.Repeat("a", model.MaxNoteTextLength+1), nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestGetNote(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newNotesService()

	note, err := svc.CreateNote(ctx, "author-1", "secret", nil)
	if err != nil {
		t.Fatal("create note failed", err)
	}

	t.Run("AuthorCanRead", func(t *testing.T) {
		got, err := svc.GetNote(ctx, note.ID, "author-1")
		if err != nil {
			t.Fatal("get note failed", err)
		}
		if got.Text != "secret" {
			t.Errorf("unexpected text %q", got.Text)
		}
	})

	t.Run("NonAuthorForbidden", func(t *testing.T) {
		_, err := svc.GetNote(ctx, note.ID, "author-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("MissingNote", func(t *testing.T) {
		_, err := svc.GetNote(ctx, "no-such-note", "author-1")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newNotesService()

	note, _ := svc.CreateNote(ctx, "author-1", "before", nil)

	t.Run("OnlyAuthorCanEdit", func(t *testing.T) {
		_, err := svc.UpdateNote(ctx, note.ID, "author-2", "after", nil)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("UpdatesTextAndVisibility", func(t *testing.T) {
		private := false
		updated, err := svc.UpdateNote(ctx, note.ID, "author-1", "after", &private)
		if err != nil {
			t.Fatal("update note failed", err)
		}
		if updated.Text != "after" || updated.Private {
			t.Errorf("unexpected state after update: %+v", updated)
		}
	})

	t.Run("MissingNote", func(t *testing.T) {
		_, err := svc.UpdateNote(ctx, "no-such-note", "author-1", "text", nil)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestArchiveAndRestore(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newNotesService()

	note, _ := svc.CreateNote(ctx, "author-1", "to archive", nil)

	t.Run("NonAuthorCannotArchive", func(t *testing.T) {
		err := svc.ArchiveNote(ctx, note.ID, "author-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("ArchiveKeepsRow", func(t *testing.T) {
		if err := svc.ArchiveNote(ctx, note.ID, "author-1"); err != nil {
			t.Fatal("archive failed", err)
		}
		got, err := svc.GetNote(ctx, note.ID, "author-1")
		if err != nil {
			t.Fatal("archived note must stay fetchable by id", err)
		}
		if !got.Archived {
			t.Error("expected archived flag set")
		}
	})

	t.Run("ArchivedHiddenFromList", func(t *testing.T) {
		notes, err := svc.ListNotes(ctx, "author-1")
		if err != nil {
			t.Fatal("list notes failed", err)
		}
		for _, n := range notes {
			if n.ID == note.ID {
				t.Error("archived note must not appear in listings")
			}
		}
	})

	t.Run("RestoreClearsFlag", func(t *testing.T) {
		if err := svc.RestoreNote(ctx, note.ID, "author-1"); err != nil {
			t.Fatal("restore failed", err)
		}
		got, err := svc.GetNote(ctx, note.ID, "author-1")
		if err != nil {
			t.Fatal("restored note must stay fetchable", err)
		}
		if got.Archived {
			t.Error("expected archived flag cleared after restore")
		}
	})

	t.Run("NonAuthorCannotRestore", func(t *testing.T) {
		err := svc.RestoreNote(ctx, note.ID, "author-2")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}

func TestListNotesVisibility(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newNotesService()

	public := false
	own, _ := svc.CreateNote(ctx, "alice", "alice private", nil)
	shared, _ := svc.CreateNote(ctx, "bob", "bob public", &public)
	hidden, _ := svc.CreateNote(ctx, "bob", "bob private", nil)

	notes, err := svc.ListNotes(ctx, "alice")
	if err != nil {
		t.Fatal("list notes failed", err)
	}

	ids := make(map[string]bool)
	for _, n := range notes {
		ids[n.ID] = true
	}

	if !ids[own.ID] {
		t.Error("expected caller's own private note in listing")
	}
	if !ids[shared.ID] {
		t.Error("expected other user's public note in listing")
	}
	if ids[hidden.ID] {
		t.Error("other user's private note must not be listed")
	}
}

func TestAssignTags(t *testing.T) {
	ctx := context.Background()
	svc, notes, tags, _ := newNotesService()

	note, _ := svc.CreateNote(ctx, "author-1", "tagged note", nil)
	tags.Create(ctx, &model.Tag{ID: "tag-1", Name: "go"})
	tags.Create(ctx, &model.Tag{ID: "tag-2", Name: "mongo"})

	t.Run("DuplicateIDsCollapse", func(t *testing.T) {
		err := svc.AssignTags(ctx, note.ID, []string{"tag-1", "tag-1", "tag-2"})
		if err != nil {
			t.Fatal("assign tags failed", err)
		}
		// Re-adding an already assigned tag must stay idempotent
		if err := svc.AssignTags(ctx, note.ID, []string{"tag-1"}); err != nil {
			t.Fatal("re-assign failed", err)
		}
		stored := notes.notes[note.ID]
		if len(stored.TagIDs) != 2 {
			t.Errorf("expected exactly 2 tag associations, got %v", stored.TagIDs)
		}
	})

	t.Run("MissingTagFailsWithoutPartialWrite", func(t *testing.T) {
		before := len(notes.notes[note.ID].TagIDs)
		err := svc.AssignTags(ctx, note.ID, []string{"tag-2", "no-such-tag"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if len(notes.notes[note.ID].TagIDs) != before {
			t.Error("failed assignment must not change the tag set")
		}
	})

	t.Run("MissingNote", func(t *testing.T) {
		err := svc.AssignTags(ctx, "no-such-note", []string{"tag-1"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestFilterNotes(t *testing.T) {
	ctx := context.Background()
	svc, _, tags, users := newNotesService()

	users.Add(ctx, &model.User{UserID: "u-alice", Username: "alice"})
	users.Add(ctx, &model.User{UserID: "u-bob", Username: "bob"})
	tags.Create(ctx, &model.Tag{ID: "tag-go", Name: "go"})

	aliceNote, _ := svc.CreateNote(ctx, "u-alice", "alice on go", nil)
	svc.AssignTags(ctx, aliceNote.ID, []string{"tag-go"})
	bobNote, _ := svc.CreateNote(ctx, "u-bob", "bob note", nil)

	t.Run("ByUsername", func(t *testing.T) {
		notes, err := svc.FilterNotes(ctx, nil, []string{"alice"})
		if err != nil {
			t.Fatal("filter failed", err)
		}
		if len(notes) != 1 || notes[0].ID != aliceNote.ID {
			t.Errorf("expected exactly alice's note, got %d notes", len(notes))
		}
	})

	t.Run("ByTag", func(t *testing.T) {
		notes, err := svc.FilterNotes(ctx, []string{"go"}, nil)
		if err != nil {
			t.Fatal("filter failed", err)
		}
		if len(notes) != 1 || notes[0].ID != aliceNote.ID {
			t.Errorf("expected exactly the tagged note, got %d notes", len(notes))
		}
	})

	t.Run("BothFiltersIntersect", func(t *testing.T) {
		notes, err := svc.FilterNotes(ctx, []string{"go"}, []string{"bob"})
		if err != nil {
			t.Fatal("filter failed", err)
		}
		if len(notes) != 0 {
			t.Errorf("bob has no go-tagged notes, got %d", len(notes))
		}
	})

	t.Run("UnknownTagMatchesNothing", func(t *testing.T) {
		notes, err := svc.FilterNotes(ctx, []string{"rust"}, nil)
		if err != nil {
			t.Fatal("filter failed", err)
		}
		if len(notes) != 0 {
			t.Errorf("expected empty result, got %d notes", len(notes))
		}
	})

	t.Run("NoFilterRejected", func(t *testing.T) {
		_, err := svc.FilterNotes(ctx, nil, nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	_ = bobNote
}

func TestNotesByUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _, users := newNotesService()

	users.Add(ctx, &model.User{UserID: "u-alice", Username: "alice"})
	private, _ := svc.CreateNote(ctx, "u-alice", "private note", nil)
	svc.ArchiveNote(ctx, private.ID, "u-alice")

	t.Run("IncludesPrivateAndArchived", func(t *testing.T) {
		notes, err := svc.NotesByUser(ctx, "u-alice")
		if err != nil {
			t.Fatal("notes by user failed", err)
		}
		if len(notes) != 1 {
			t.Errorf("expected 1 note, got %d", len(notes))
		}
	})

	t.Run("MissingUser", func(t *testing.T) {
		_, err := svc.NotesByUser(ctx, "no-such-user")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
