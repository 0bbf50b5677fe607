package editor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"reflect"
	"sync"
	"testing"

	"addesigner/internal/copygen"
	"addesigner/internal/domain"
	"addesigner/internal/render"
)

func newTestStore() *Store {
	return NewStore(render.NewComposer(render.NewFontRegistry(render.FontOptions{})))
}

func TestCreateStartsFromDefaults(t *testing.T) {
	store := newTestStore()
	sess, err := store.Create(nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}
	st := sess.State()
	if st.Title != domain.DefaultTitle || st.Size != domain.PresetInstagram {
		t.Fatalf("state = %+v, want defaults", st)
	}
	if sess.Surface().Width() != 1200 || sess.Surface().Height() != 1200 {
		t.Fatalf("surface = %dx%d, want 1200x1200", sess.Surface().Width(), sess.Surface().Height())
	}
	got, err := store.Get(sess.ID)
	if err != nil || got != sess {
		t.Fatalf("Get = %v, %v", got, err)
	}
}

func TestCreateRejectsFailingInit(t *testing.T) {
	store := newTestStore()
	boom := errors.New("boom")
	if _, err := store.Create(func(*domain.DesignState) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Create err = %v, want boom", err)
	}
	if n := len(store.List()); n != 0 {
		t.Fatalf("sessions = %d, want 0", n)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := newTestStore()
	if _, err := store.Get("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}
	if err := store.Delete("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete err = %v, want ErrNotFound", err)
	}
}

func TestUpdateReRendersAndNotifies(t *testing.T) {
	sess, _ := newTestStore().Create(nil)

	var got []*render.Surface
	cancel := sess.Subscribe(func(s *render.Surface) { got = append(got, s) })

	surface, err := sess.Update(func(st *domain.DesignState) error {
		st.Size = domain.PresetStory
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if surface.Width() != 1080 || surface.Height() != 1920 {
		t.Fatalf("surface = %dx%d, want 1080x1920", surface.Width(), surface.Height())
	}
	if sess.Surface() != surface {
		t.Fatal("Surface() should return the latest render")
	}
	if len(got) != 1 || got[0] != surface {
		t.Fatalf("notifications = %d, want 1 with the new surface", len(got))
	}

	cancel()
	cancel()
	if _, err := sess.Update(func(st *domain.DesignState) error { st.Title = "x"; return nil }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("notifications after cancel = %d, want 1", len(got))
	}
}

func TestUpdateFailureLeavesStateUntouched(t *testing.T) {
	sess, _ := newTestStore().Create(nil)
	before := sess.Surface()
	notified := false
	sess.Subscribe(func(*render.Surface) { notified = true })

	_, err := sess.Update(func(st *domain.DesignState) error {
		st.Title = "changed"
		return domain.ErrInvalidColor
	})
	if !errors.Is(err, domain.ErrInvalidColor) {
		t.Fatalf("err = %v, want ErrInvalidColor", err)
	}
	if sess.State().Title != domain.DefaultTitle {
		t.Fatalf("title = %q, want unchanged", sess.State().Title)
	}
	if sess.Surface() != before || notified {
		t.Fatal("a failed update must not re-render")
	}
}

func TestApplySuggestionUpdatesTitleAndReRenders(t *testing.T) {
	sess, _ := newTestStore().Create(nil)
	before, _ := render.PNGBytes(sess.Surface())

	surface, err := sess.ApplySuggestion(domain.CategoryHeadline, "Save Big Today")
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if sess.State().Title != "Save Big Today" {
		t.Fatalf("title = %q, want Save Big Today", sess.State().Title)
	}
	if !reflect.DeepEqual(surface.Layout.TitleLines, []string{"Save Big Today"}) {
		t.Fatalf("TitleLines = %q", surface.Layout.TitleLines)
	}
	after, _ := render.PNGBytes(surface)
	if bytes.Equal(before, after) {
		t.Fatal("surface should change after applying a headline")
	}
}

func TestApplySuggestionAt(t *testing.T) {
	sess, _ := newTestStore().Create(nil)
	sess.ReplaceSuggestions(copygen.Suggestions{
		Headlines:    []string{"One", "Two"},
		Descriptions: []string{"Fast and easy"},
		CTAs:         []string{},
	})

	text, _, err := sess.ApplySuggestionAt(domain.CategoryDescription, 0)
	if err != nil {
		t.Fatalf("ApplySuggestionAt: %v", err)
	}
	if text != "Fast and easy" || sess.State().Subtitle != "Fast and easy" {
		t.Fatalf("subtitle = %q, want Fast and easy", sess.State().Subtitle)
	}

	tests := []struct {
		c     domain.Category
		index int
	}{
		{domain.CategoryHeadline, 2},
		{domain.CategoryHeadline, -1},
		{domain.CategoryCTA, 0},
	}
	for _, tc := range tests {
		if _, _, err := sess.ApplySuggestionAt(tc.c, tc.index); !errors.Is(err, domain.ErrInvalidSuggestion) {
			t.Fatalf("ApplySuggestionAt(%s, %d) err = %v, want ErrInvalidSuggestion", tc.c, tc.index, err)
		}
	}
}

func TestReplaceSuggestionsIsWholesale(t *testing.T) {
	sess, _ := newTestStore().Create(nil)
	if _, ok := sess.Suggestions(); ok {
		t.Fatal("fresh session should have no suggestions")
	}
	sess.ReplaceSuggestions(copygen.Suggestions{Headlines: []string{"A"}, CTAs: []string{"Go"}})
	sess.ReplaceSuggestions(copygen.Suggestions{Headlines: []string{"B"}})

	sg, ok := sess.Suggestions()
	if !ok {
		t.Fatal("expected suggestions")
	}
	if !reflect.DeepEqual(sg.Headlines, []string{"B"}) || len(sg.CTAs) != 0 {
		t.Fatalf("suggestions = %+v, want only the second run", sg)
	}
}

func TestBackgroundImageSetAndClear(t *testing.T) {
	sess, _ := newTestStore().Create(nil)
	img := image.NewNRGBA(image.Rect(0, 0, 40, 10))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	surface := sess.SetBackgroundImage(img)
	if !sess.State().HasImage() {
		t.Fatal("expected an image")
	}
	if surface.Layout.Image.Empty() {
		t.Fatal("layout should carry the image rectangle")
	}

	surface = sess.ClearBackgroundImage()
	if sess.State().HasImage() || !surface.Layout.Image.Empty() {
		t.Fatal("image should be cleared")
	}
}

func TestConcurrentUpdates(t *testing.T) {
	sess, _ := newTestStore().Create(func(st *domain.DesignState) error {
		st.Size = domain.PresetFacebook
		return nil
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.ApplySuggestion(domain.CategoryCTA, "Buy")
		}()
	}
	wg.Wait()
	if sess.State().CTALabel != "Buy" {
		t.Fatalf("cta = %q, want Buy", sess.State().CTALabel)
	}
}

func TestSnapshotPairsStateWithItsSurface(t *testing.T) {
	sess, _ := newTestStore().Create(nil)
	sizes := []domain.SizePreset{domain.PresetInstagram, domain.PresetStory, domain.PresetYouTube}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 30; i++ {
			p := sizes[i%len(sizes)]
			_, _ = sess.Update(func(st *domain.DesignState) error {
				st.Size = p
				return nil
			})
		}
	}()

	for {
		st, surface := sess.Snapshot()
		if surface.Width() != st.Size.Width || surface.Height() != st.Size.Height {
			t.Fatalf("surface = %dx%d, want %s", surface.Width(), surface.Height(), st.Size.Dimensions())
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

func TestApplySuggestionAtRacingReplace(t *testing.T) {
	sess, _ := newTestStore().Create(nil)
	short := copygen.Suggestions{Headlines: []string{"Only one"}}
	long := copygen.Suggestions{Headlines: []string{"First pick", "Second pick"}}
	sess.ReplaceSuggestions(long)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				sess.ReplaceSuggestions(short)
			} else {
				sess.ReplaceSuggestions(long)
			}
		}
	}()

	for i := 0; i < 20; i++ {
		text, _, err := sess.ApplySuggestionAt(domain.CategoryHeadline, 1)
		if errors.Is(err, domain.ErrInvalidSuggestion) {
			continue
		}
		if err != nil {
			t.Fatalf("ApplySuggestionAt: %v", err)
		}
		if text != "Second pick" {
			t.Fatalf("text = %q, want Second pick", text)
		}
		if title := sess.State().Title; title != "Second pick" {
			t.Fatalf("title = %q, want Second pick", title)
		}
	}
	wg.Wait()

	sess.ReplaceSuggestions(long)
	if _, _, err := sess.ApplySuggestionAt(domain.CategoryHeadline, 1); err != nil {
		t.Fatalf("ApplySuggestionAt after settle: %v", err)
	}
	if sess.State().Title != "Second pick" {
		t.Fatalf("title = %q, want Second pick", sess.State().Title)
	}
}
