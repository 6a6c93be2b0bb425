//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package worker exposes a tool catalog over HTTP so orchestrating
// systems can list and invoke tools. It is a thin hosting adapter: it
// parses requests, bounds concurrency, and delegates every invocation
// to the catalog; classification and validation live below this layer.
package worker

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/cors"

	"trpc.group/trpc-go/trpc-arcade-go/catalog"
	"trpc.group/trpc-go/trpc-arcade-go/log"
	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

const defaultPoolSize = 64

// Server serves a catalog over HTTP.
type Server struct {
	catalog *catalog.ToolCatalog
	router  *mux.Router
	handler http.Handler
	pool    *ants.Pool
}

// Option configures the Server instance.
type Option func(*serverOptions)

type serverOptions struct {
	poolSize int
}

// WithPoolSize bounds the number of tool invocations running
// concurrently. Defaults to 64.
func WithPoolSize(n int) Option {
	return func(o *serverOptions) { o.poolSize = n }
}

// New creates a worker server for the given catalog.
func New(c *catalog.ToolCatalog, opts ...Option) (*Server, error) {
	o := &serverOptions{poolSize: defaultPoolSize}
	for _, opt := range opts {
		opt(o)
	}
	pool, err := ants.NewPool(o.poolSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		catalog: c,
		router:  mux.NewRouter(),
		pool:    pool,
	}
	s.registerRoutes()

	cr := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	s.handler = cr.Handler(s.router)
	return s, nil
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler { return s.handler }

// Close releases the invocation pool.
func (s *Server) Close() error {
	s.pool.Release()
	return nil
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/tools", s.handleListTools).Methods(http.MethodGet)
	s.router.HandleFunc("/tools/invoke", s.handleInvoke).Methods(http.MethodPost)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.ListTools())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.HealthCheck())
}

// handleInvoke runs one tool call. Malformed request bodies are a
// transport concern and answered with 400 before the executor is ever
// involved; everything past decoding is reported through the uniform
// response envelope with status 200.
func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	var req tool.ToolCallRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Tool.Name == "" {
		http.Error(w, "missing tool name", http.StatusBadRequest)
		return
	}

	done := make(chan *tool.ToolCallResponse, 1)
	err := s.pool.Submit(func() {
		done <- s.catalog.CallTool(r.Context(), &req)
	})
	if err != nil {
		log.Errorf("could not dispatch invocation of %s: %v", req.Tool.Name, err)
		http.Error(w, "worker is overloaded", http.StatusServiceUnavailable)
		return
	}

	select {
	case resp := <-done:
		s.writeJSON(w, http.StatusOK, resp)
	case <-r.Context().Done():
		// The invocation keeps running on the pool but its result has
		// nowhere to go; the buffered channel lets it finish.
		log.Warnf("invocation of %s abandoned: %v", req.Tool.Name, r.Context().Err())
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}
