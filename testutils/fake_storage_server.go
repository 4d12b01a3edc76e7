package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// FakeStorageServer mimics the storage object API, keeping objects in memory.
type FakeStorageServer struct {
	s *httptest.Server

	mu      sync.Mutex
	objects map[string]StoredObject
}

type StoredObject struct {
	ContentType string
	Data        []byte
}

func NewFakeStorageServer() *FakeStorageServer {
	f := &FakeStorageServer{objects: make(map[string]StoredObject)}

	r := chi.NewRouter()
	r.Route("/storage/v1/object", func(r chi.Router) {
		r.Get("/public/{bucket}/{key}", f.getHandler)
		r.Post("/{bucket}/{key}", f.uploadHandler)
		r.Delete("/{bucket}/{key}", f.deleteHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeStorageServer) Close() {
	f.s.Close()
}

func (f *FakeStorageServer) URL() string {
	return f.s.URL
}

// Object returns the object stored under bucket/key.
func (f *FakeStorageServer) Object(bucket, key string) (StoredObject, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.objects[bucket+"/"+key]
	return o, ok
}

func (f *FakeStorageServer) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

func (f *FakeStorageServer) uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "bucket") + "/" + chi.URLParam(r, "key")

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.objects[id]; exists && r.Header.Get("x-upsert") != "true" {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Duplicate"}`))
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.objects[id] = StoredObject{ContentType: r.Header.Get("Content-Type"), Data: data}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"Key":"` + id + `"}`))
}

func (f *FakeStorageServer) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "bucket") + "/" + chi.URLParam(r, "key")

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.objects[id]; !exists {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not_found"}`))
		return
	}
	delete(f.objects, id)
	w.WriteHeader(http.StatusOK)
}

func (f *FakeStorageServer) getHandler(w http.ResponseWriter, r *http.Request) {
	o, ok := f.Object(chi.URLParam(r, "bucket"), chi.URLParam(r, "key"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", o.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(o.Data)
}
