// 参数

package response

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-apibox/filter"
	"github.com/go-apibox/types"
)

type Params struct {
	Rules        []*ParamRule
	RawValues    url.Values
	ParsedValues map[string]interface{}
	Error        *ErrorManager
}

type ParamRule struct {
	ParamName string
	Filters   []filter.Filter
	Parsed    bool
}

// NewParams return a new Params object.
func NewParams(values url.Values, em *ErrorManager) *Params {
	rules := make([]*ParamRule, 0)
	parsedValues := make(map[string]interface{})
	return &Params{rules, values, parsedValues, em}
}

// NewParams return a Params object over the form values of current request.
func (c *Context) NewParams() *Params {
	return NewParams(c.Input.GetForm(), c.Error)
}

// Add add a new param with filter functions.
func (p *Params) Add(paramName string, filters ...filter.Filter) *Params {
	p.Rules = append(p.Rules, &ParamRule{paramName, filters, false})
	return p
}

// Del remove params from list.
func (p *Params) Del(paramNames ...string) *Params {
	for i := 0; i < len(p.Rules); i++ {
		rule := p.Rules[i]
		for _, paramName := range paramNames {
			if rule.ParamName == paramName {
				p.Rules = append(p.Rules[:i], p.Rules[i+1:]...)
				i--
				break
			}
		}
	}
	// 同时删除已分析的值
	for _, paramName := range paramNames {
		delete(p.ParsedValues, paramName)
	}
	return p
}

// Validate one param according to the rule and save the parsed value.
func (p *Params) Validate(paramName string, filters ...filter.Filter) *Error {
	var val interface{}
	var ok bool
	var err *filter.Error

	p.Rules = append(p.Rules, &ParamRule{paramName, filters, true})

	val, ok = p.RawValues[paramName]
	if ok {
		if len(p.RawValues[paramName]) == 1 {
			val = p.RawValues[paramName][0]
		}
	} else {
		val = nil
	}

	for _, f := range filters {
		val, err = f.Run(paramName, val)
		if err != nil {
			return p.Error.New(ErrorType(err.Type), err.Fields...)
		}
	}

	p.ParsedValues[paramName] = val
	return nil
}

// Parse parse the values according to the rules.
func (p *Params) Parse() *Error {
	var val interface{}
	var ok bool
	var err *filter.Error

	for _, rule := range p.Rules {
		if rule.Parsed {
			continue
		}
		rule.Parsed = true

		paramName := rule.ParamName
		filters := rule.Filters

		val, ok = p.RawValues[paramName]
		if ok {
			if len(p.RawValues[paramName]) == 1 {
				val = p.RawValues[paramName][0]
			}
		} else {
			val = nil
		}

		for _, f := range filters {
			val, err = f.Run(paramName, val)
			if err != nil {
				return p.Error.New(ErrorType(err.Type), err.Fields...)
			}
		}

		p.ParsedValues[paramName] = val
	}

	return nil
}

// Set set the param value.
func (p *Params) Set(paramName string, paramValue interface{}) *Params {
	p.ParsedValues[paramName] = paramValue
	return p
}

// Has return the if param exist.
func (p *Params) Has(paramName string) bool {
	v, ok := p.ParsedValues[paramName]
	return ok && v != nil
}

// Get return the parsed value of param.
func (p *Params) Get(paramName string) interface{} {
	if v, ok := p.ParsedValues[paramName]; ok {
		return v
	}
	return nil
}

// GetAll return all values in params.
func (p *Params) GetAll() map[string]interface{} {
	return p.ParsedValues
}

// GetString return the parsed value of param as string.
func (p *Params) GetString(paramName string) string {
	v := p.Get(paramName)
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	}
	return fmt.Sprint(v)
}

// GetInt return the parsed value of param as int.
func (p *Params) GetInt(paramName string) int {
	v := p.Get(paramName)
	switch val := v.(type) {
	case int:
		return val
	}
	return 0
}

// GetInt64 return the parsed value of param as int64.
func (p *Params) GetInt64(paramName string) int64 {
	v := p.Get(paramName)
	switch val := v.(type) {
	case int64:
		return val
	}
	return 0
}

// GetTime return the parsed value of param as time.
func (p *Params) GetTime(paramName string) *time.Time {
	v := p.Get(paramName)
	switch val := v.(type) {
	case time.Time:
		return &val
	case *time.Time:
		return val
	}
	return nil
}

// GetIntRange return the parsed value of param as IntRange.
func (p *Params) GetIntRange(paramName string) *types.IntRange {
	v := p.Get(paramName)
	switch val := v.(type) {
	case *types.IntRange:
		return val
	case types.IntRange:
		return &val
	}

	return nil
}

// GetTimeRange return the parsed value of param as TimeRange.
func (p *Params) GetTimeRange(paramName string) *types.TimeRange {
	v := p.Get(paramName)

	switch val := v.(type) {
	case *types.TimeRange:
		return val
	case types.TimeRange:
		return &val
	}

	return nil
}

// GetStringArray return the parsed value of param as string array.
func (p *Params) GetStringArray(paramName string) []string {
	v := p.Get(paramName)
	switch val := v.(type) {
	case []string:
		return val
	}
	return []string{}
}
