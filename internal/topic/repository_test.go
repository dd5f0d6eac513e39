package topic_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/maturamate/maturamate-api/internal/testutil"
	"github.com/maturamate/maturamate-api/internal/topic"
)

func TestFindAllOrdersByPositionThenName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := topic.NewRepository(db)

	seed := []topic.Topic{
		{ID: uuid.New(), Name: "Senza posizione"},
		{ID: uuid.New(), Name: "Geometria", Position: testutil.Ptr(2)},
		{ID: uuid.New(), Name: "Algebra", Position: testutil.Ptr(1)},
		{ID: uuid.New(), Name: "Analisi", Position: testutil.Ptr(2)},
	}
	for i := range seed {
		if err := repo.CreateTopic(&seed[i]); err != nil {
			t.Fatalf("seed del tema %q: %v", seed[i].Name, err)
		}
	}

	topics, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	want := []string{"Algebra", "Analisi", "Geometria", "Senza posizione"}
	if len(topics) != len(want) {
		t.Fatalf("attesi %d temi, trovati %d", len(want), len(topics))
	}
	for i, name := range want {
		if topics[i].Name != name {
			t.Errorf("posizione %d: atteso %q, trovato %q", i, name, topics[i].Name)
		}
	}
}

func TestFindAllWithSubtopicsMatchesPerTopicListing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := topic.NewRepository(db)

	t1 := topic.Topic{ID: uuid.New(), Name: "Algebra", Position: testutil.Ptr(1)}
	t2 := topic.Topic{ID: uuid.New(), Name: "Geometria", Position: testutil.Ptr(2)}
	for _, tp := range []*topic.Topic{&t1, &t2} {
		if err := repo.CreateTopic(tp); err != nil {
			t.Fatalf("seed del tema: %v", err)
		}
	}

	subtopics := []topic.Subtopic{
		{ID: uuid.New(), TopicID: t1.ID, Name: "Equazioni", Position: testutil.Ptr(1)},
		{ID: uuid.New(), TopicID: t1.ID, Name: "Disequazioni", Position: testutil.Ptr(2)},
		{ID: uuid.New(), TopicID: t2.ID, Name: "Triangoli"},
	}
	for i := range subtopics {
		if err := repo.CreateSubtopic(&subtopics[i]); err != nil {
			t.Fatalf("seed del sottotema: %v", err)
		}
	}

	tree, err := repo.FindAllWithSubtopics()
	if err != nil {
		t.Fatalf("FindAllWithSubtopics: %v", err)
	}

	for _, node := range tree {
		flat, err := repo.FindSubtopics(node.ID)
		if err != nil {
			t.Fatalf("FindSubtopics(%s): %v", node.Name, err)
		}
		if len(flat) != len(node.Subtopics) {
			t.Fatalf("tema %q: l'albero ha %d sottotemi, l'elenco %d", node.Name, len(node.Subtopics), len(flat))
		}
		for i := range flat {
			if flat[i].ID != node.Subtopics[i].ID {
				t.Errorf("tema %q, posizione %d: albero ed elenco divergono", node.Name, i)
			}
		}
	}
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := topic.NewRepository(db)

	got, err := repo.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Fatalf("atteso nil per un tema inesistente, trovato %+v", got)
	}
}
