// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"errors"
	"strings"
)

// AssembleFunc turns one block (header line included) into an entry. line is
// the 1-indexed source line of the block's header. Returning nil skips the
// block silently.
type AssembleFunc func(block string, line int) *ParsedEntry

// Parser runs the list pipeline. The zero value is not usable; create one
// with [New]. A Parser holds no mutable state and may be shared.
type Parser struct {
	assemble AssembleFunc
}

// Option configures a [Parser].
type Option func(*Parser)

// WithAssembler replaces the per-block assembly step, e.g. to decorate or
// post-process entries. Panics raised by fn are reported per block like any
// other assembly failure.
func WithAssembler(fn AssembleFunc) Option {
	return func(p *Parser) {
		if fn != nil {
			p.assemble = fn
		}
	}
}

// New constructs a [Parser] with the standard entry assembly.
func New(opts ...Option) *Parser {
	p := &Parser{assemble: assembleEntry}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// byteOrderMark is what editors such as Notepad put in front of UTF-8 files.
const byteOrderMark = "\uFEFF"

// Parse converts the full text of a tracking list into entries using the
// standard pipeline. It never panics.
func Parse(text string) *ParseResult {
	return defaultParser.Parse(text)
}

// Parse converts the full text of a tracking list into entries.
//
// A leading byte order mark is dropped before splitting. Blocks are
// processed in source order. A block whose assembly panics is
// recorded in ParseErrors against its header line and the remaining blocks
// are still parsed.
func (p *Parser) Parse(text string) *ParseResult {
	text = strings.TrimPrefix(text, byteOrderMark)

	result := &ParseResult{
		Entries:     []ParsedEntry{},
		TotalLines:  len(strings.Split(text, "\n")),
		ParseErrors: []LineError{},
	}

	for _, b := range splitBlocks(text) {
		entry, err := p.assembleSafely(b)
		if err != nil {
			result.ParseErrors = append(result.ParseErrors, LineError{Line: b.line, Message: err.Error()})
			result.ErrorCount++
			continue
		}
		if entry == nil {
			continue
		}

		result.Entries = append(result.Entries, *entry)
		result.SuccessCount++
		if len(entry.ParseWarnings) > 0 {
			result.WarningCount++
		}
	}

	return result
}

// assembleSafely converts a panic raised while assembling a block into an error.
func (p *Parser) assembleSafely(b block) (entry *ParsedEntry, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			entry = nil
			err = panicError(recovered)
		}
	}()
	return p.assemble(b.text, b.line), nil
}

// errUnknownPanic is reported for panic values that carry no message.
var errUnknownPanic = errors.New("Unknown error")

func panicError(recovered any) error {
	switch value := recovered.(type) {
	case error:
		return value
	case string:
		return errors.New(value)
	default:
		return errUnknownPanic
	}
}
