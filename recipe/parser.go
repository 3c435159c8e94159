// This file is part of endf - https://github.com/gschnabel/endf
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"strings"
	"text/scanner"
)

// isIntLiteral reports whether a scanned number token's source text denotes
// an integer (no '.' or exponent marker) rather than a float.
func isIntLiteral(text string) bool {
	return !strings.ContainsAny(text, ".eE")
}

// recordKinds maps the KIND keyword text to the AST tag used for its
// endf_line node.
var recordKinds = map[string]string{
	"TEXT": "text_record", "HEAD": "head_record", "CONT": "cont_record",
	"DIR": "dir_record", "INTG": "intg_record", "TAB1": "tab1_record",
	"TAB2": "tab2_record", "LIST": "list_record", "SEND": "send_record",
	"DUMMY": "dummy_record",
}

type parser struct {
	lx   *Lexer
	errs ParseErrors
}

// Parse lexes and parses recipe source text into a "body" Node, the root
// of the recipe's statement sequence.
func Parse(src, name string) (*Node, error) {
	p := &parser{lx: NewLexer(src, name)}
	root := p.body(map[string]bool{})
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return root, nil
}

func (p *parser) error(pos scanner.Position, msg string) {
	p.errs = append(p.errs, struct {
		Pos scanner.Position
		Msg string
	}{pos, msg})
}

func (p *parser) abort() bool { return len(p.errs) >= maxErrors }

// expect consumes the next token, recording an error if its Kind does not
// match want.
func (p *parser) expect(want TokKind, what string) Token {
	t := p.lx.Next()
	if t.Kind != want {
		p.error(t.Pos, "expected "+what+", got "+t.Text)
	}
	return t
}

// body parses statements until EOF or until a token in stopWords (matched
// against a keyword token's text) is seen; that token is left unconsumed.
func (p *parser) body(stopWords map[string]bool) *Node {
	pos := p.lx.Peek().Pos
	root := &Node{Name: "body", Pos: pos}
	for !p.abort() {
		t := p.lx.Peek()
		if t.Kind == TokEOF {
			break
		}
		if t.Kind == TokNewline {
			p.lx.Next()
			continue
		}
		if t.Kind == TokKeyword && stopWords[t.Text] {
			break
		}
		if t.Kind == TokSectionClose {
			break
		}
		stmt := p.statement()
		if stmt != nil {
			root.add(stmt)
		}
	}
	return root
}

func (p *parser) statement() *Node {
	t := p.lx.Peek()
	switch {
	case t.Kind == TokLBrack:
		return p.endfLine()
	case t.Kind == TokKeyword && t.Text == "for":
		return p.forLoop()
	case t.Kind == TokKeyword && t.Text == "if":
		return p.ifClause()
	case t.Kind == TokKeyword && t.Text == "STOP":
		return p.stopLine()
	case t.Kind == TokLParen:
		return p.section()
	default:
		p.error(t.Pos, "unexpected token "+t.Text)
		p.lx.Next()
		return nil
	}
}

// ctrlSpec parses one MAT/MF/MT slot: the bare keyword (meaning "bind to
// the enclosing section's value") or an integer literal.
func (p *parser) ctrlSpec(name string) *Node {
	t := p.lx.Next()
	pos := t.Pos
	switch {
	case t.Kind == TokKeyword && (t.Text == "MAT" || t.Text == "MF" || t.Text == "MT"):
		return leaf(name, t.Text, pos)
	case t.Kind == TokNumber:
		return leaf(name, int(t.Num), pos)
	default:
		p.error(pos, "expected MAT/MF/MT or integer in control spec")
		return leaf(name, t.Text, pos)
	}
}

func (p *parser) endfLine() *Node {
	pos := p.expect(TokLBrack, "'['").Pos
	mat := p.ctrlSpec("mat_spec")
	p.expect(TokComma, "','")
	mf := p.ctrlSpec("mf_spec")
	p.expect(TokComma, "','")
	mt := p.ctrlSpec("mt_spec")
	p.expect(TokSlash, "'/'")

	fieldsNode := tree("fields", pos)
	for {
		t := p.lx.Peek()
		if t.Kind == TokRBrack {
			break
		}
		fieldsNode.add(p.fieldItem())
		if p.lx.Peek().Kind == TokComma {
			p.lx.Next()
			continue
		}
		break
	}
	p.expect(TokRBrack, "']'")
	kindTok := p.lx.Next()
	kindName, ok := recordKinds[kindTok.Text]
	if !ok {
		p.error(kindTok.Pos, "unknown record kind "+kindTok.Text)
		kindName = "unknown_record"
	}

	n := tree(kindName, pos, tree("ctrl_spec", pos, mat, mf, mt), fieldsNode)

	if p.lx.Peek().Kind == TokLParen {
		p.lx.Next()
		if kindTok.Text == "INTG" {
			n.add(tree("ndigit_expr", p.lx.Peek().Pos, p.expr()))
		} else {
			nameTok := p.expect(TokIdent, "section name")
			n.add(leaf("name", nameTok.Text, nameTok.Pos))
		}
		p.expect(TokRParen, "')'")
	}
	return n
}

// fieldItem parses one comma-separated item inside an endf_line's field
// list: a LIST body's PADLINE marker, a nested list_loop, or a plain
// expression.
func (p *parser) fieldItem() *Node {
	t := p.lx.Peek()
	if t.Kind == TokKeyword && t.Text == "PADLINE" {
		p.lx.Next()
		return leaf("LINEPADDING", nil, t.Pos)
	}
	if t.Kind == TokLBrace {
		return p.listLoop()
	}
	return p.expr()
}

func (p *parser) listLoop() *Node {
	pos := p.expect(TokLBrace, "'{'").Pos
	body := tree("list_body", pos)
	for {
		pt := p.lx.Peek()
		if pt.Kind == TokRBrace {
			break
		}
		body.add(p.fieldItem())
		if p.lx.Peek().Kind == TokComma {
			p.lx.Next()
			continue
		}
		break
	}
	p.expect(TokRBrace, "'}'")
	p.expect(TokLBrace, "'{'")
	varTok := p.expect(TokIdent, "loop variable")
	p.expect(TokEquals, "'='")
	start := p.expr()
	p.expectKeyword("to")
	stop := p.expr()
	p.expect(TokRBrace, "'}'")
	return tree("list_loop", pos, body, leaf("VARNAME", varTok.Text, varTok.Pos), start, stop)
}

func (p *parser) expectKeyword(word string) Token {
	t := p.lx.Next()
	if t.Kind != TokKeyword || t.Text != word {
		p.error(t.Pos, "expected '"+word+"'")
	}
	return t
}

func (p *parser) forLoop() *Node {
	pos := p.expectKeyword("for").Pos
	varTok := p.expect(TokIdent, "loop variable")
	p.expect(TokEquals, "'='")
	start := p.expr()
	p.expectKeyword("to")
	stop := p.expr()
	p.expect(TokColon, "':'")
	body := p.body(map[string]bool{"endfor": true})
	p.expectKeyword("endfor")
	return tree("for_loop", pos, leaf("VARNAME", varTok.Text, varTok.Pos), start, stop, body)
}

func (p *parser) ifClause() *Node {
	pos := p.expectKeyword("if").Pos
	n := tree("if_clause", pos)
	n.add(p.ifBranch())
	for p.lx.Peek().Kind == TokKeyword && p.lx.Peek().Text == "elif" {
		p.lx.Next()
		n.add(p.ifBranch())
	}
	if p.lx.Peek().Kind == TokKeyword && p.lx.Peek().Text == "else" {
		elsePos := p.lx.Next().Pos
		p.expect(TokColon, "':'")
		body := p.body(map[string]bool{"endif": true})
		n.add(tree("else_branch", elsePos, body))
	}
	p.expectKeyword("endif")
	return n
}

// ifBranch parses one condition/lookahead/body triple shared by the if and
// elif heads.
func (p *parser) ifBranch() *Node {
	pos := p.lx.Peek().Pos
	cond := p.disjunction()
	branch := tree("if_branch", pos, cond)
	if p.lx.Peek().Kind == TokLBrack {
		p.lx.Next()
		p.expectKeyword("lookahead")
		p.expect(TokEquals, "'='")
		branch.add(tree("lookahead_expr", p.lx.Peek().Pos, p.expr()))
		p.expect(TokRBrack, "']'")
	}
	p.expect(TokColon, "':'")
	body := p.body(map[string]bool{"elif": true, "else": true, "endif": true})
	branch.add(body)
	return branch
}

func (p *parser) section() *Node {
	pos := p.expect(TokLParen, "'('").Pos
	head := p.extvarname()
	p.expect(TokRParen, "')'")
	body := p.body(map[string]bool{})
	p.expect(TokSectionClose, "'(/'")
	tail := p.extvarname()
	p.expect(TokRParen, "')'")
	// Head/tail name matching happens at the interpreter level once
	// indices are resolved against the data tree and loop vars.
	return tree("section", pos, head, body, tail)
}

func (p *parser) stopLine() *Node {
	pos := p.expectKeyword("STOP").Pos
	n := tree("stop_line", pos)
	if p.lx.Peek().Kind == TokString {
		s := p.lx.Next()
		n.add(leaf("STOP_MESSAGE", s.Text, s.Pos))
	}
	return n
}

// extvarname parses VARNAME ("[" index ("," index)* "]")?
func (p *parser) extvarname() *Node {
	t := p.expect(TokIdent, "variable name")
	n := tree("extvarname", t.Pos, leaf("VARNAME", t.Text, t.Pos))
	if p.lx.Peek().Kind == TokLBrack {
		p.lx.Next()
		idxList := tree("indices", t.Pos)
		for {
			idxList.add(p.index())
			if p.lx.Peek().Kind == TokComma {
				p.lx.Next()
				continue
			}
			break
		}
		p.expect(TokRBrack, "']'")
		n.add(idxList)
	}
	return n
}

// index parses one bracketed index: a loop variable name or an integer
// literal.
func (p *parser) index() *Node {
	t := p.lx.Next()
	switch t.Kind {
	case TokIdent:
		return leaf("loopvar_index", t.Text, t.Pos)
	case TokNumber:
		return leaf("int_index", int(t.Num), t.Pos)
	default:
		p.error(t.Pos, "expected index")
		return leaf("int_index", 0, t.Pos)
	}
}

// disjunction parses `and`/`or`-composed relational expressions.
func (p *parser) disjunction() *Node {
	left := p.conjunction()
	for p.lx.Peek().Kind == TokKeyword && p.lx.Peek().Text == "or" {
		pos := p.lx.Next().Pos
		right := p.conjunction()
		left = tree("or", pos, left, right)
	}
	return left
}

func (p *parser) conjunction() *Node {
	left := p.relation()
	for p.lx.Peek().Kind == TokKeyword && p.lx.Peek().Text == "and" {
		pos := p.lx.Next().Pos
		right := p.relation()
		left = tree("and", pos, left, right)
	}
	return left
}

var relOps = map[TokKind]string{
	TokLt: "lt", TokLe: "le", TokEq: "eq", TokNe: "ne", TokGe: "ge", TokGt: "gt",
}

func (p *parser) relation() *Node {
	left := p.expr()
	t := p.lx.Peek()
	if op, ok := relOps[t.Kind]; ok {
		p.lx.Next()
		right := p.expr()
		return tree(op, t.Pos, left, right)
	}
	return left
}

// expr parses `+ -` over `* /` over unary minus/atom.
func (p *parser) expr() *Node {
	left := p.term()
	for {
		t := p.lx.Peek()
		switch t.Kind {
		case TokPlus:
			p.lx.Next()
			left = tree("add", t.Pos, left, p.term())
		case TokMinus:
			p.lx.Next()
			left = tree("sub", t.Pos, left, p.term())
		default:
			return left
		}
	}
}

func (p *parser) term() *Node {
	left := p.unary()
	for {
		t := p.lx.Peek()
		switch t.Kind {
		case TokStar:
			p.lx.Next()
			left = tree("mul", t.Pos, left, p.unary())
		case TokSlash:
			p.lx.Next()
			left = tree("div", t.Pos, left, p.unary())
		default:
			return left
		}
	}
}

func (p *parser) unary() *Node {
	t := p.lx.Peek()
	if t.Kind == TokMinus {
		p.lx.Next()
		return tree("neg", t.Pos, p.unary())
	}
	return p.atom()
}

func (p *parser) atom() *Node {
	t := p.lx.Peek()
	switch t.Kind {
	case TokNumber:
		p.lx.Next()
		return leaf("number", NumberLit{F: t.Num, IsInt: isIntLiteral(t.Text)}, t.Pos)
	case TokDesiredNumber:
		p.lx.Next()
		return leaf("desired_number", NumberLit{F: t.Num, IsInt: isIntLiteral(t.Text)}, t.Pos)
	case TokLParen:
		p.lx.Next()
		inner := p.expr()
		p.expect(TokRParen, "')'")
		return inner
	case TokIdent:
		n := p.extvarname()
		if p.lx.Peek().Kind == TokQuestion {
			p.lx.Next()
			return tree("inconsistent_varspec", t.Pos, n)
		}
		return n
	default:
		p.error(t.Pos, "unexpected token "+t.Text+" in expression")
		p.lx.Next()
		return leaf("number", NumberLit{IsInt: true}, t.Pos)
	}
}
