// Copyright (c) 2025 Visvasity LLC

// Package output holds the views generated from the layouts in package input.
package output

//go:generate go run github.com/visvasity/fieldgen -config fieldgen.toml
