//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package naming converts between the snake_case identifiers tool
// authors write and the PascalCase names that appear on the wire. The
// conversion is purely lexical so that it stays stable and invertible
// for display purposes.
package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

var (
	pascalBoundary1 = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	pascalBoundary2 = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// SnakeToPascal converts a snake_case identifier to PascalCase, e.g.
// "list_projects" becomes "ListProjects". Names that already start
// with an upper-case letter and contain no underscores pass through
// unchanged.
func SnakeToPascal(name string) string {
	if name == "" {
		return name
	}
	if strings.Contains(name, "_") {
		parts := strings.Split(name, "_")
		var b strings.Builder
		for _, p := range parts {
			b.WriteString(titleCaser.String(p))
		}
		return b.String()
	}
	return titleCaser.String(name)
}

// PascalToSnake converts a PascalCase name to snake_case, e.g.
// "ListProjects" becomes "list_projects".
func PascalToSnake(name string) string {
	s := pascalBoundary1.ReplaceAllString(name, "${1}_${2}")
	s = pascalBoundary2.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
