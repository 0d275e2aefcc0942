package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/genreseek/internal/genres"
)

type fakeSource struct {
	mu      sync.Mutex
	top     []genres.Genre
	err     error
	queries []string
}

func (f *fakeSource) TopGenres(_ context.Context, query string) ([]genres.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.top, f.err
}

func (f *fakeSource) AllGenres(context.Context, string) ([]genres.Genre, error) {
	panic("AllGenres must not be called")
}

func (f *fakeSource) seenQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func sampleStates() map[string]State {
	g1, g2 := genres.New(), genres.New()
	return map[string]State{
		"default":     {},
		"with query":  {Query: "rock"},
		"with top":    {TopGenres: []genres.Genre{g1}},
		"with all":    {AllGenres: []genres.Genre{g1, g2}},
		"with error":  {Status: Failed(errors.New("old"))},
		"with loaded": {Query: "j", TopGenres: []genres.Genre{g2}, AllGenres: []genres.Genre{g1}},
	}
}

func TestReduce_ViewAppearedWhileLoadingIsNoop(t *testing.T) {
	d := New(&fakeSource{})
	for name, s := range sampleStates() {
		t.Run(name, func(t *testing.T) {
			s.Status = Loading()
			before := s.Clone()

			eff := d.Reduce(&s, ViewAppeared{})

			if !eff.IsNone() {
				t.Fatalf("effect = %q, want none", eff.Name())
			}
			if !s.Equal(before) {
				t.Fatalf("state changed: got %+v want %+v", s, before)
			}
		})
	}
}

func TestReduce_ViewAppearedStartsLoad(t *testing.T) {
	d := New(&fakeSource{})
	for name, s := range sampleStates() {
		if s.Status.IsLoading() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			before := s.Clone()

			eff := d.Reduce(&s, ViewAppeared{})

			if !s.Status.IsLoading() {
				t.Fatalf("status = %v, want loading", s.Status)
			}
			before.Status = Loading()
			if !s.Equal(before) {
				t.Fatalf("only status should change: got %+v want %+v", s, before)
			}

			next, ok := eff.Run(context.Background())
			if !ok {
				t.Fatal("effect produced no follow-up")
			}
			if _, isReq := next.(loadRequested); !isReq {
				t.Fatalf("follow-up = %T, want loadRequested", next)
			}
		})
	}
}

func TestReduce_LoadRequestedFetchesWithCapturedQuery(t *testing.T) {
	g1 := genres.New()
	src := &fakeSource{top: []genres.Genre{g1}}
	d := New(src)

	s := State{Query: "blues", Status: Loading()}
	eff := d.Reduce(&s, loadRequested{})
	if eff.Name() != topGenresEffect {
		t.Fatalf("effect = %q, want %q", eff.Name(), topGenresEffect)
	}
	if !s.Status.IsLoading() || s.Query != "blues" {
		t.Fatalf("loadRequested changed state: %+v", s)
	}

	d.Reduce(&s, DidTypeQuery{Query: "jazz"})

	next, ok := eff.Run(context.Background())
	if !ok {
		t.Fatal("effect produced no follow-up")
	}
	done, isDone := next.(loadCompleted)
	if !isDone || done.Err != nil || !genres.Equal(done.Genres, []genres.Genre{g1}) {
		t.Fatalf("follow-up = %#v, want success [%v]", next, g1)
	}
	if q := src.seenQueries(); len(q) != 1 || q[0] != "blues" {
		t.Fatalf("queries = %v, want [blues]", q)
	}
}

func TestReduce_LoadRequestedMapsFailure(t *testing.T) {
	boom := errors.New("boom")
	d := New(&fakeSource{err: boom})

	var s State
	next, ok := d.Reduce(&s, loadRequested{}).Run(context.Background())
	if !ok {
		t.Fatal("effect produced no follow-up")
	}
	done, isDone := next.(loadCompleted)
	if !isDone || done.Err != boom {
		t.Fatalf("follow-up = %#v, want failure with the source error", next)
	}
}

func TestReduce_LoadRequestedWithoutValueEmitsNothing(t *testing.T) {
	d := New(nil)

	var s State
	eff := d.Reduce(&s, loadRequested{})
	if eff.IsNone() {
		t.Fatal("loadRequested should return a fetch effect")
	}
	if next, ok := eff.Run(context.Background()); ok {
		t.Fatalf("stub source produced follow-up %#v", next)
	}
}

func TestReduce_FailureWithoutFallbackSurfacesError(t *testing.T) {
	boom := errors.New("network down")
	d := New(nil)
	top := []genres.Genre{genres.New()}

	s := State{TopGenres: top, Status: Loading()}
	eff := d.Reduce(&s, loadCompleted{Err: boom})

	if !eff.IsNone() {
		t.Fatalf("effect = %q, want none", eff.Name())
	}
	if s.Status.Kind != StatusError || s.Status.Err != boom {
		t.Fatalf("status = %v, want error(network down)", s.Status)
	}
	if !genres.Equal(s.TopGenres, top) {
		t.Fatalf("TopGenres changed: %v", s.TopGenres)
	}
}

func TestReduce_FailureWithFallbackSuppressesError(t *testing.T) {
	d := New(nil)
	top := []genres.Genre{genres.New()}
	all := []genres.Genre{genres.New(), genres.New()}

	s := State{TopGenres: top, AllGenres: all, Status: Loading()}
	d.Reduce(&s, loadCompleted{Err: errors.New("ignored")})

	if s.Status.Kind != StatusNone {
		t.Fatalf("status = %v, want none", s.Status)
	}
	if !genres.Equal(s.TopGenres, top) || !genres.Equal(s.AllGenres, all) {
		t.Fatalf("genres changed: top=%v all=%v", s.TopGenres, s.AllGenres)
	}
}

func TestReduce_SuccessReplacesTopGenresRegardlessOfStatus(t *testing.T) {
	d := New(nil)
	list := []genres.Genre{genres.New(), genres.New()}

	prior := map[string]LoadingStatus{
		"none":    {},
		"loading": Loading(),
		"error":   Failed(errors.New("old")),
	}
	for name, status := range prior {
		t.Run(name, func(t *testing.T) {
			s := State{TopGenres: []genres.Genre{genres.New()}, Status: status}
			d.Reduce(&s, loadCompleted{Genres: list})

			if s.Status.Kind != StatusNone {
				t.Fatalf("status = %v, want none", s.Status)
			}
			if !genres.Equal(s.TopGenres, list) {
				t.Fatalf("TopGenres = %v, want %v", s.TopGenres, list)
			}
		})
	}
}

func TestReduce_SuccessCopiesList(t *testing.T) {
	d := New(nil)
	list := []genres.Genre{genres.New()}
	want := list[0]

	var s State
	d.Reduce(&s, loadCompleted{Genres: list})
	list[0] = genres.New()

	if s.TopGenres[0] != want {
		t.Fatal("TopGenres shares the completion's backing array")
	}
}

func TestReduce_DidTypeQueryOnlySetsQuery(t *testing.T) {
	d := New(nil)
	for name, s := range sampleStates() {
		t.Run(name, func(t *testing.T) {
			before := s.Clone()

			eff := d.Reduce(&s, DidTypeQuery{Query: "abc"})

			if !eff.IsNone() {
				t.Fatalf("effect = %q, want none", eff.Name())
			}
			if s.Query != "abc" {
				t.Fatalf("Query = %q, want abc", s.Query)
			}
			before.Query = "abc"
			if !s.Equal(before) {
				t.Fatalf("other fields changed: got %+v want %+v", s, before)
			}
		})
	}
}

func TestReduce_Scenario(t *testing.T) {
	g1, g2 := genres.New(), genres.New()
	d := New(&fakeSource{top: []genres.Genre{g1, g2}})

	var s State
	eff := d.Reduce(&s, ViewAppeared{})
	if !s.Equal(State{Status: Loading()}) {
		t.Fatalf("after ViewAppeared state = %+v, want loading", s)
	}
	next, ok := eff.Run(context.Background())
	if !ok {
		t.Fatal("ViewAppeared produced no follow-up")
	}
	if _, isReq := next.(loadRequested); !isReq {
		t.Fatalf("follow-up = %T, want loadRequested", next)
	}

	d.Reduce(&s, loadCompleted{Genres: []genres.Genre{g1, g2}})
	want := State{TopGenres: []genres.Genre{g1, g2}}
	if !s.Equal(want) {
		t.Fatalf("final state = %+v, want %+v", s, want)
	}
}

func TestStore_ScenarioEndToEnd(t *testing.T) {
	g1, g2 := genres.New(), genres.New()
	store := New(&fakeSource{top: []genres.Genre{g1, g2}}).NewStore()

	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = store.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	store.Send(ViewAppeared{})
	if got := store.State(); !got.Status.IsLoading() {
		t.Fatalf("status after send = %v, want loading", got.Status)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-updates:
			if s.Status.Kind == StatusNone && len(s.TopGenres) == 2 {
				if !genres.Equal(s.TopGenres, []genres.Genre{g1, g2}) {
					t.Fatalf("TopGenres = %v, want [%v %v]", s.TopGenres, g1, g2)
				}
				return
			}
		case <-deadline:
			t.Fatalf("timed out; last state %+v", store.State())
		}
	}
}

func TestStore_ViewAppearedTwiceFetchesOnce(t *testing.T) {
	src := &fakeSource{err: genres.ErrNoValue}
	store := New(src).NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = store.Run(ctx)
	}()

	store.Send(ViewAppeared{})
	store.Send(ViewAppeared{})

	deadline := time.Now().Add(2 * time.Second)
	for len(src.seenQueries()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("source was never called")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	if n := len(src.seenQueries()); n != 1 {
		t.Fatalf("source called %d times, want 1", n)
	}
	if got := store.State(); !got.Status.IsLoading() {
		t.Fatalf("status = %v, want loading (no value produced)", got.Status)
	}
}

func TestLoadingStatus_EqualAndString(t *testing.T) {
	if !Loading().Equal(Loading()) || Loading().Equal(LoadingStatus{}) {
		t.Fatal("kind comparison wrong")
	}
	if !Failed(errors.New("x")).Equal(Failed(errors.New("x"))) {
		t.Fatal("errors with same text should be equal")
	}
	if Failed(errors.New("x")).Equal(Failed(errors.New("y"))) {
		t.Fatal("errors with different text should differ")
	}
	if got := Failed(errors.New("boom")).String(); got != "error(boom)" {
		t.Fatalf("String() = %q, want error(boom)", got)
	}
	if got := (LoadingStatus{}).String(); got != "none" {
		t.Fatalf("String() = %q, want none", got)
	}
}

func TestActionNames(t *testing.T) {
	cases := map[string]Action{
		"view_appeared":  ViewAppeared{},
		"did_type_query": DidTypeQuery{Query: "q"},
		"load_requested": loadRequested{},
		"load_succeeded": loadCompleted{},
		"load_failed":    loadCompleted{Err: errors.New("x")},
	}
	for want, a := range cases {
		if got := a.ActionName(); got != want {
			t.Fatalf("ActionName() = %q, want %q", got, want)
		}
	}
}
