// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package demo holds the components shown by "ripple demo".
package demo

import (
	"fmt"

	"github.com/wavetermdev/ripple/app"
	"github.com/wavetermdev/ripple/vdom"
)

type TodoItem struct {
	Id   int
	Text string
	Done bool
}

type BadgeProps struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

var Badge = vdom.DefineTyped("Badge", func(props BadgeProps) *vdom.VDomElem {
	return vdom.H("span", map[string]any{"class": "muted"}, fmt.Sprintf(" [%s: %d]", props.Label, props.Count))
})

var Counter = vdom.DefineComponent("Counter", func(props map[string]any) *vdom.VDomElem {
	count, setCount, updateCount := app.UseState(0)
	return vdom.H("section", nil,
		vdom.H("h2", nil, "Counter"),
		vdom.H("p", nil,
			"Count: ",
			vdom.H("b", map[string]any{"color": vdom.Ternary(count < 0, "9", "")}, count),
		),
		vdom.H("div", nil,
			vdom.H("button", map[string]any{"onClick": func() { updateCount(func(n int) int { return n + 1 }) }}, "+1"),
			vdom.H("button", map[string]any{"onClick": func() { updateCount(func(n int) int { return n - 1 }) }}, "-1"),
			vdom.H("button", map[string]any{"onClick": func() { setCount(0) }}, "reset"),
		),
	)
})

var TodoList = vdom.DefineComponent("TodoList", func(props map[string]any) *vdom.VDomElem {
	todos, setTodos, updateTodos := app.UseState([]TodoItem{
		{Id: 1, Text: "read the reconciler"},
		{Id: 2, Text: "write a component"},
	})
	nextId, _, updateNextId := app.UseState(3)
	remaining := 0
	for _, todo := range todos {
		if !todo.Done {
			remaining++
		}
	}
	addTodo := func() {
		id := nextId
		updateNextId(func(n int) int { return n + 1 })
		updateTodos(func(items []TodoItem) []TodoItem {
			return append(items[:len(items):len(items)], TodoItem{Id: id, Text: fmt.Sprintf("task %d", id)})
		})
	}
	toggle := func(id int) {
		updateTodos(func(items []TodoItem) []TodoItem {
			rtn := make([]TodoItem, len(items))
			for idx, item := range items {
				if item.Id == id {
					item.Done = !item.Done
				}
				rtn[idx] = item
			}
			return rtn
		})
	}
	clearDone := func() {
		var rtn []TodoItem
		for _, item := range todos {
			if !item.Done {
				rtn = append(rtn, item)
			}
		}
		setTodos(rtn)
	}
	return vdom.H("section", nil,
		vdom.H("h2", nil, "Todos", vdom.H(Badge, map[string]any{"label": "left", "count": remaining})),
		vdom.H("ul", nil,
			vdom.ForEach(todos, func(item TodoItem, idx int) any {
				return vdom.H("li", map[string]any{"class": vdom.Classes(vdom.If(item.Done, "done"))},
					vdom.H("button", map[string]any{"onClick": func() { toggle(item.Id) }}, vdom.IfElse(item.Done, "x", " ")),
					" ", item.Text,
				)
			}),
		),
		vdom.If(len(todos) == 0, vdom.H("p", map[string]any{"class": "muted"}, "nothing to do")),
		vdom.H("div", nil,
			vdom.H("button", map[string]any{"onClick": addTodo}, "add"),
			vdom.H("button", map[string]any{"onClick": clearDone}, "clear done"),
		),
	)
})

func App() *vdom.VDomElem {
	return vdom.H("main", nil,
		vdom.H("h1", nil, "ripple demo"),
		vdom.H(Counter, nil),
		vdom.H("hr", nil),
		vdom.H(TodoList, nil),
	)
}
