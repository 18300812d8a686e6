// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"pulse/internal/models"
)

func TestPostStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	u := testUser(t, db, "test-author-"+uuid.NewString()[:8])
	g := testGroup(t, db, "Post Group", "test-post-group-"+uuid.NewString()[:8])

	created, err := s.Create(&models.Post{
		Text:     "Тестовый текст",
		AuthorID: u.ID,
		GroupID:  &g.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected non-zero post id")
	}
	if created.PubDate.IsZero() {
		t.Error("expected server-assigned pub_date")
	}
	if created.AuthorUsername != u.Username {
		t.Errorf("joined author: got %q, want %q", created.AuthorUsername, u.Username)
	}
	if created.GroupTitle == nil || *created.GroupTitle != g.Title {
		t.Errorf("joined group title: got %v, want %q", created.GroupTitle, g.Title)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Text != "Тестовый текст" {
		t.Errorf("FindByID returned %+v", found)
	}
}

func TestPostStoreFindMissingReturnsNil(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	found, err := s.FindByID(-1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for missing post, got %+v", found)
	}
}

func TestPostStoreListFiltersAndOrder(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	author := testUser(t, db, "test-lister-"+uuid.NewString()[:8])
	other := testUser(t, db, "test-other-"+uuid.NewString()[:8])
	g := testGroup(t, db, "List Group", "test-list-group-"+uuid.NewString()[:8])

	for i := 0; i < 3; i++ {
		if _, err := s.Create(&models.Post{Text: "grouped", AuthorID: author.ID, GroupID: &g.ID}); err != nil {
			t.Fatalf("create grouped post: %v", err)
		}
	}
	if _, err := s.Create(&models.Post{Text: "ungrouped", AuthorID: other.ID}); err != nil {
		t.Fatalf("create ungrouped post: %v", err)
	}

	byGroup, err := s.ListByGroup(g.ID)
	if err != nil {
		t.Fatalf("ListByGroup: %v", err)
	}
	if len(byGroup) != 3 {
		t.Errorf("ListByGroup: got %d posts, want 3", len(byGroup))
	}

	byAuthor, err := s.ListByAuthor(other.ID)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(byAuthor) != 1 {
		t.Errorf("ListByAuthor: got %d posts, want 1", len(byAuthor))
	}

	// Newest first, ids as tie-break: each post must not be older than its
	// successor.
	all, err := s.ListOrdered()
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if cur.PubDate.After(prev.PubDate) {
			t.Fatalf("posts out of order at %d: %v before %v", i, prev.PubDate, cur.PubDate)
		}
		if cur.PubDate.Equal(prev.PubDate) && cur.ID > prev.ID {
			t.Fatalf("tie-break violated at %d: id %d before %d", i, prev.ID, cur.ID)
		}
	}
}

func TestPostStoreUpdateLeavesAuthorAndPubDate(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	author := testUser(t, db, "test-editor-"+uuid.NewString()[:8])
	g := testGroup(t, db, "Edit Group", "test-edit-group-"+uuid.NewString()[:8])

	created, err := s.Create(&models.Post{Text: "before edit", AuthorID: author.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Text = "after edit"
	created.GroupID = &g.ID
	// Deliberately poison the immutable fields to prove Update ignores them.
	created.AuthorID = uuid.New()

	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	updated, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if updated.Text != "after edit" {
		t.Errorf("text: got %q, want %q", updated.Text, "after edit")
	}
	if updated.GroupID == nil || *updated.GroupID != g.ID {
		t.Errorf("group: got %v, want %s", updated.GroupID, g.ID)
	}
	if updated.AuthorID != author.ID {
		t.Errorf("author reassigned: got %s, want %s", updated.AuthorID, author.ID)
	}
}

func TestPostStoreGroupDeleteKeepsPosts(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	author := testUser(t, db, "test-orphan-"+uuid.NewString()[:8])
	g := testGroup(t, db, "Doomed Group", "test-doomed-"+uuid.NewString()[:8])

	created, err := s.Create(&models.Post{Text: "survives", AuthorID: author.ID, GroupID: &g.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := db.Exec("DELETE FROM groups WHERE id = $1", g.ID); err != nil {
		t.Fatalf("delete group: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("post deleted with its group; weak reference expected")
	}
	if found.GroupID != nil {
		t.Errorf("group_id: got %v, want NULL after group deletion", found.GroupID)
	}
}

func TestPostStoreCount(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	before, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	author := testUser(t, db, "test-counted-"+uuid.NewString()[:8])
	if _, err := s.Create(&models.Post{Text: "one more", AuthorID: author.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	after, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after != before+1 {
		t.Errorf("Count: got %d, want %d", after, before+1)
	}
}
