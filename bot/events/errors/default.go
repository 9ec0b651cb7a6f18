package errors

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
)

type defaultEventErr[E any] struct {
	message string
	data    map[string]any
	logger  *slog.Logger
	errs    []error
}

func (d *defaultEventErr[E]) Join(errs ...error) EventErr {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	e := &defaultEventErr[E]{
		message: d.message,
		data:    d.data,
		logger:  d.logger,
		errs:    make([]error, 0, len(d.errs)+n),
	}
	e.errs = append(e.errs, d.errs...)
	for _, err := range errs {
		if err != nil {
			e.errs = append(e.errs, err)
		}
	}
	return e
}

func (d *defaultEventErr[E]) Error() string {
	keys := make([]string, 0, len(d.data))
	for k := range d.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := make([]string, 0, len(keys))
	for _, k := range keys {
		data = append(data, slog.Any(k, d.data[k]).String())
	}

	var s strings.Builder
	if d.message != "" {
		s.WriteString(fmt.Sprintf("%s-ERRO: %s %s", d.message, d.Event(), strings.Join(data, " ")))
	} else {
		s.WriteString(fmt.Sprintf("%s-ERRO: %s", d.Event(), strings.Join(data, " ")))
	}
	for _, err := range d.errs {
		s.WriteString("\n" + err.Error())
	}
	return s.String()
}

func (d *defaultEventErr[E]) Unwrap() []error {
	return d.errs
}

func (d *defaultEventErr[E]) Event() string {
	var e E
	t := reflect.TypeOf(e)
	if t == nil {
		return "UNNAMED EVENT"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return strings.ToUpper(t.Name())
}

func (d *defaultEventErr[E]) Log() {
	args := make([]any, 0, len(d.data))
	for k, v := range d.data {
		args = append(args, slog.Any(k, v))
	}

	d.logger.Error(d.Error(), args...)
}

func (d *defaultEventErr[E]) AddData(key string, v any) {
	d.data[key] = v
}
