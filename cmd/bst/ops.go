package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/g-m-twostay/go-bst/Trees"
)

type opKind byte

const (
	opInsert   opKind = '+'
	opDelete   opKind = '-'
	opContains opKind = '?'
)

type op struct {
	kind opKind
	v    int
}

func (p op) String() string {
	return string(p.kind) + strconv.Itoa(p.v)
}

// parseOps reads tokens of the form +N (or plain N), -N and ?N.
func parseOps(tokens []string) ([]op, error) {
	ops := make([]op, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		p := op{kind: opKind(tok[0])}
		num := tok[1:]
		switch p.kind {
		case opInsert, opDelete, opContains:
		default:
			p.kind, num = opInsert, tok
		}
		v, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("bad operation %q: %w", tok, err)
		}
		p.v = v
		ops = append(ops, p)
	}
	return ops, nil
}

// apply ops to tree in order. Contains answers are written to out as "N true|false".
func apply(tree *Trees.BST[int, uint32], ops []op, out io.Writer) error {
	for _, p := range ops {
		switch p.kind {
		case opInsert:
			if !tree.Insert(p.v) {
				log.Debugw("duplicate ignored", "value", p.v)
			}
		case opDelete:
			if !tree.Delete(p.v) {
				log.Debugw("absent value not deleted", "value", p.v)
			}
		case opContains:
			if _, err := fmt.Fprintf(out, "%d %t\n", p.v, tree.Contains(p.v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// emit the traversal o of tree to out, through the recursive or the iterative walk.
func emit(tree *Trees.BST[int, uint32], o Trees.Order, iterative bool, out io.Writer) error {
	if iterative {
		return tree.Emit(o, out)
	}
	return tree.EmitRecursive(o, out)
}
