// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wavetermdev/htmltoken"
)

// can tokenize and bind markup to elems

const Html_ParamPrefix = "#param:"
const Html_BindParamTagName = "bindparam"

const fragmentTag = "#fragment"

func appendChildToStack(stack []*VDomElem, child *VDomElem) {
	if child == nil || len(stack) == 0 {
		return
	}
	parent := stack[len(stack)-1]
	parent.Children = append(parent.Children, *child)
}

func popElemStack(stack []*VDomElem) []*VDomElem {
	if len(stack) <= 1 {
		return stack
	}
	curElem := stack[len(stack)-1]
	appendChildToStack(stack[:len(stack)-1], curElem)
	return stack[:len(stack)-1]
}

func curElemTag(stack []*VDomElem) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].Kind.Tag
}

// a single top level element is returned as is, several are wrapped in a div
func finalizeStack(stack []*VDomElem) *VDomElem {
	if len(stack) == 0 {
		return nil
	}
	for len(stack) > 1 {
		stack = popElemStack(stack)
	}
	rtnElem := stack[0]
	switch len(rtnElem.Children) {
	case 0:
		return nil
	case 1:
		return &rtnElem.Children[0]
	}
	rtnElem.Kind = HostKind("div")
	return rtnElem
}

func getAttrString(token htmltoken.Token, key string) string {
	for _, attr := range token.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func attrToProp(attrVal string, isJson bool, params map[string]any) any {
	if isJson {
		var val any
		err := json.Unmarshal([]byte(attrVal), &val)
		if err != nil {
			return nil
		}
		unmStrVal, ok := val.(string)
		if !ok {
			return val
		}
		attrVal = unmStrVal
	}
	if strings.HasPrefix(attrVal, Html_ParamPrefix) {
		bindKey := attrVal[len(Html_ParamPrefix):]
		bindVal, ok := params[bindKey]
		if !ok {
			return nil
		}
		return bindVal
	}
	return attrVal
}

func tokenToElem(token htmltoken.Token, params map[string]any) *VDomElem {
	props := make(map[string]any)
	for _, attr := range token.Attr {
		if attr.Key == "" || attr.Val == "" {
			continue
		}
		props[attr.Key] = attrToProp(attr.Val, attr.IsJson, params)
	}
	// run through H so handlers and reserved keys are normalized
	return H(token.Data, props)
}

func isWsChar(char rune) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r'
}

func isAllWhitespace(s string) bool {
	for _, char := range s {
		if !isWsChar(char) {
			return false
		}
	}
	return true
}

// drops whitespace only lines and whitespace hugging tags at line edges
func processWhitespace(htmlStr string) string {
	lines := strings.Split(htmlStr, "\n")
	var newLines []string
	for _, line := range lines {
		if isAllWhitespace(line) {
			continue
		}
		trimmed := strings.TrimFunc(line, isWsChar)
		if !strings.HasPrefix(trimmed, "<") {
			trimmed = " " + trimmed
		}
		if !strings.HasSuffix(trimmed, ">") {
			trimmed = trimmed + " "
		}
		newLines = append(newLines, trimmed)
	}
	return strings.Join(newLines, "")
}

func processTextStr(s string) string {
	if s == "" {
		return ""
	}
	if isAllWhitespace(s) {
		return " "
	}
	return strings.TrimSpace(s)
}

// Bind converts markup into elements.  attribute values of the form
// "#param:name" are replaced with params[name], <bindparam key="name"/> splices
// params[name] in as children.  errors are rendered as a trailing text node.
func Bind(htmlStr string, params map[string]any) *VDomElem {
	htmlStr = processWhitespace(htmlStr)
	iter := htmltoken.NewTokenizer(strings.NewReader(htmlStr))
	elemStack := []*VDomElem{{Kind: HostKind(fragmentTag)}}
	var tokenErr error
outer:
	for {
		tokenType := iter.Next()
		token := iter.Token()
		switch tokenType {
		case htmltoken.StartTagToken:
			if token.Data == Html_BindParamTagName {
				tokenErr = errors.New("bindparam tags must be self closing")
				break outer
			}
			elemStack = append(elemStack, tokenToElem(token, params))
		case htmltoken.EndTagToken:
			if len(elemStack) <= 1 {
				tokenErr = fmt.Errorf("end tag %q without start tag", token.Data)
				break outer
			}
			if curElemTag(elemStack) != token.Data {
				tokenErr = fmt.Errorf("end tag %q does not match start tag %q", token.Data, curElemTag(elemStack))
				break outer
			}
			elemStack = popElemStack(elemStack)
		case htmltoken.SelfClosingTagToken:
			if token.Data == Html_BindParamTagName {
				keyAttr := getAttrString(token, "key")
				for _, elem := range PartToElems(params[keyAttr]) {
					appendChildToStack(elemStack, &elem)
				}
				continue
			}
			appendChildToStack(elemStack, tokenToElem(token, params))
		case htmltoken.TextToken:
			textStr := processTextStr(token.Data)
			if textStr == "" || textStr == " " {
				continue
			}
			elem := TextElem(textStr)
			appendChildToStack(elemStack, &elem)
		case htmltoken.CommentToken:
			continue
		case htmltoken.DoctypeToken:
			tokenErr = errors.New("doctype not supported")
			break outer
		case htmltoken.ErrorToken:
			if iter.Err() == io.EOF {
				break outer
			}
			tokenErr = iter.Err()
			break outer
		}
	}
	if tokenErr != nil {
		errTextElem := TextElem(tokenErr.Error())
		appendChildToStack(elemStack, &errTextElem)
	}
	return finalizeStack(elemStack)
}
