package main

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/wrapperspb"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dispatch/errors"
	"github.com/xraph/dispatch/extract"
	"github.com/xraph/dispatch/handler"
	"github.com/xraph/dispatch/middleware"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/routing"
	"github.com/xraph/dispatch/server"
)

type note struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type noteInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type noteStore struct {
	mu    sync.RWMutex
	next  int
	notes map[int]note
}

func newNoteStore() *noteStore {
	return &noteStore{next: 1, notes: make(map[int]note)}
}

func (s *noteStore) list() []note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *noteStore) get(id int) (note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notes[id]
	return n, ok
}

func (s *noteStore) create(in noteInput) note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := note{ID: s.next, Title: in.Title, Body: in.Body, CreatedAt: time.Now().UTC()}
	s.notes[n.ID] = n
	s.next++
	return n
}

func (s *noteStore) update(id int, in noteInput) (note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return note{}, false
	}
	n.Title, n.Body = in.Title, in.Body
	s.notes[id] = n
	return n, true
}

func (s *noteStore) delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return false
	}
	delete(s.notes, id)
	return true
}

// noteID parses the :id path parameter.
func noteID() extract.Extractor[int] {
	return extract.Func[int](func(r *http.Request) (int, error) {
		raw, err := extract.Path("id").Extract(r)
		if err != nil {
			return 0, err
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return 0, errors.BadRequest("note id must be an integer").WithCause(err)
		}
		return id, nil
	})
}

func validInput() extract.Extractor[noteInput] {
	body := extract.JSON[noteInput]()
	return extract.Func[noteInput](func(r *http.Request) (noteInput, error) {
		in, err := body.Extract(r)
		if err != nil {
			return in, err
		}
		if in.Title == "" {
			return in, errors.BadRequest("title is required")
		}
		return in, nil
	})
}

type noteRoutes struct {
	index      routing.OnMethod
	collection routing.OnMethod
	item       routing.OnMethod
	echo       routing.OnMethod
}

// newNoteRoutes builds the demo routes. Creating notes is limited per
// client by limiter; a rejected create is answered with a plain text 429.
func newNoteRoutes(store *noteStore, limiter *middleware.RateLimiter) noteRoutes {
	notFound := errors.NotFound("note not found")

	index := handler.Func(func(*http.Request) response.HTML {
		items := make([]g.Node, 0)
		for _, n := range store.list() {
			items = append(items, html.Li(html.Strong(g.Text(n.Title)), g.Text(" "+n.Body)))
		}
		return response.HTML{Node: html.HTML(
			html.Head(html.TitleEl(g.Text("notes"))),
			html.Body(html.H1(g.Text("Notes")), html.Ul(items...)),
		)}
	})

	list := handler.Func(func(*http.Request) response.JSONBody[[]note] {
		return response.JSON(store.list())
	})

	create := handler.Func1(func(_ *http.Request, in noteInput) response.IntoResponse {
		return response.WithStatus(http.StatusCreated, response.JSON(store.create(in)))
	}, validInput()).
		Layer(middleware.RateLimitPerClient(limiter, middleware.ClientIP)).
		HandleError(func(err error) response.IntoResponse {
			return response.WithStatus(errors.StatusCode(err), response.String("slow down: "+err.Error()))
		})

	show := handler.Func1(func(_ *http.Request, id int) response.IntoResponse {
		n, ok := store.get(id)
		if !ok {
			return response.FromError(notFound)
		}
		return response.JSON(n)
	}, noteID())

	update := handler.Func2(func(_ *http.Request, id int, in noteInput) response.IntoResponse {
		n, ok := store.update(id, in)
		if !ok {
			return response.FromError(notFound)
		}
		return response.JSON(n)
	}, noteID(), validInput())

	remove := handler.Func1(func(_ *http.Request, id int) response.IntoResponse {
		if !store.delete(id) {
			return response.FromError(notFound)
		}
		return response.StatusCode(http.StatusNoContent)
	}, noteID())

	echo := handler.Func1(func(_ *http.Request, msg *wrapperspb.StringValue) response.Proto {
		return response.Proto{Message: wrapperspb.String("echo: " + msg.GetValue())}
	}, extract.Proto[wrapperspb.StringValue]())

	return noteRoutes{
		index:      routing.Get(index).OrMethodNotAllowed(),
		collection: routing.Get(list).Post(create).OrMethodNotAllowed(),
		item:       routing.Get(show).Put(update).Delete(remove).OrMethodNotAllowed(),
		echo:       routing.Post(echo).OrMethodNotAllowed(),
	}
}

func mountNotes(srv *server.Server, store *noteStore, limiter *middleware.RateLimiter) {
	routes := newNoteRoutes(store, limiter)
	srv.Route("/", routes.index)
	srv.Route("/notes", routes.collection)
	srv.Route("/notes/:id", routes.item)
	srv.Route("/echo", routes.echo)
}
