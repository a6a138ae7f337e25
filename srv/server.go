package main

import (
	"github.com/gorilla/mux"

	"github.com/typesmith/json2type/corpus"
)

type server struct {
	router       *mux.Router
	corpusOpts   corpus.Options
	literalLimit int
	maxBodyBytes int64
}

func newServer(corpusOpts corpus.Options, literalLimit int, maxBodyBytes int64) *server {
	s := &server{
		router:       mux.NewRouter().StrictSlash(true),
		corpusOpts:   corpusOpts,
		literalLimit: literalLimit,
		maxBodyBytes: maxBodyBytes,
	}
	s.setupRoutes()
	return s
}
