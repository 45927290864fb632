// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var elemPtrType = reflect.TypeOf((*VDomElem)(nil))

func DefineComponent(name string, fn ComponentFunc) *Component {
	return &Component{Name: name, Fn: fn}
}

// DefineTyped decodes props into P (using json tags) before calling fn
func DefineTyped[P any](name string, fn func(P) *VDomElem) *Component {
	return &Component{Name: name, Fn: func(props map[string]any) *VDomElem {
		var p P
		if err := DecodeProps(props, &p); err != nil {
			panic(fmt.Errorf("component %s: %w", name, err))
		}
		return fn(p)
	}}
}

// does a mapstructure using "json" tags
func DecodeProps(props map[string]any, out any) error {
	dconfig := &mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(dconfig)
	if err != nil {
		return err
	}
	return decoder.Decode(props)
}

func validateCFunc(cfunc any) error {
	if cfunc == nil {
		return fmt.Errorf("component function cannot be nil")
	}
	rval := reflect.ValueOf(cfunc)
	if rval.Kind() != reflect.Func {
		return fmt.Errorf("component function must be a function (got %T)", cfunc)
	}
	rtype := rval.Type()
	if rtype.NumIn() != 1 {
		return fmt.Errorf("component function must take exactly 1 argument")
	}
	if rtype.NumOut() != 1 || rtype.Out(0) != elemPtrType {
		return fmt.Errorf("component function must return exactly one *VDomElem")
	}
	// first argument can be a map[string]any, or a struct, or ptr to struct (we'll decode the props into it)
	arg1Type := rtype.In(0)
	if arg1Type.Kind() == reflect.Ptr {
		arg1Type = arg1Type.Elem()
	}
	if arg1Type.Kind() == reflect.Map {
		if arg1Type.Key().Kind() != reflect.String ||
			!(arg1Type.Elem().Kind() == reflect.Interface && arg1Type.Elem().NumMethod() == 0) {
			return fmt.Errorf("map argument must be map[string]any")
		}
		return nil
	}
	if arg1Type.Kind() != reflect.Struct {
		return fmt.Errorf("component function argument must be map[string]any, a struct, or a struct pointer")
	}
	return nil
}

// MakeComponent wraps an arbitrary (validated) component function
func MakeComponent(name string, cfunc any) (*Component, error) {
	switch fn := cfunc.(type) {
	case *Component:
		if fn == nil {
			return nil, fmt.Errorf("component %s: nil component", name)
		}
		return fn, nil
	case ComponentFunc:
		return DefineComponent(name, fn), nil
	case func(map[string]any) *VDomElem:
		return DefineComponent(name, fn), nil
	}
	if err := validateCFunc(cfunc); err != nil {
		return nil, fmt.Errorf("component %s: %w", name, err)
	}
	rval := reflect.ValueOf(cfunc)
	argType := rval.Type().In(0)
	return &Component{Name: name, Fn: func(props map[string]any) *VDomElem {
		arg, err := makePropsArg(argType, props)
		if err != nil {
			panic(fmt.Errorf("component %s: error converting props: %w", name, err))
		}
		rtnVal := rval.Call([]reflect.Value{arg})
		if rtnVal[0].IsNil() {
			return nil
		}
		return rtnVal[0].Interface().(*VDomElem)
	}}, nil
}

func makePropsArg(argType reflect.Type, props map[string]any) (reflect.Value, error) {
	if argType.Kind() == reflect.Map {
		if props == nil {
			props = make(map[string]any)
		}
		return reflect.ValueOf(props), nil
	}
	isPtr := argType.Kind() == reflect.Ptr
	structType := argType
	if isPtr {
		structType = argType.Elem()
	}
	argPtr := reflect.New(structType)
	if err := DecodeProps(props, argPtr.Interface()); err != nil {
		return reflect.Value{}, err
	}
	if isPtr {
		return argPtr, nil
	}
	return argPtr.Elem(), nil
}
