// 错误管理

package response

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

type ErrorType uint

type ErrorManager struct {
	lang         string
	groupDefines map[string]map[ErrorType]*ErrorDefine   // group-errortype-define
	groupWords   map[string]map[string]map[string]string // group-lang-word-phrase
	mutex        sync.RWMutex
}

type ErrorDefine struct {
	code        string
	fieldCounts []int
	msgTmpls    map[string]map[int]string
}

// NewErrorDefine return an error define.
func NewErrorDefine(code string, fieldCounts []int, msgTmpls map[string]map[int]string) *ErrorDefine {
	return &ErrorDefine{code, fieldCounts, msgTmpls}
}

// NewErrorManager return an error manager.
func NewErrorManager() *ErrorManager {
	em := new(ErrorManager)
	em.lang = "en_us"
	em.groupDefines = make(map[string]map[ErrorType]*ErrorDefine)
	em.groupWords = make(map[string]map[string]map[string]string)
	return em
}

// SetLang set the default language used when generating messages.
func (em *ErrorManager) SetLang(lang string) {
	em.mutex.Lock()
	defer em.mutex.Unlock()
	em.lang = lang
}

// GetLang return the default language of the manager.
func (em *ErrorManager) GetLang() string {
	em.mutex.RLock()
	defer em.mutex.RUnlock()
	return em.lang
}

// RegisterError register a new error define in default group.
func (em *ErrorManager) RegisterError(errType ErrorType, define *ErrorDefine) {
	em.RegisterGroupError("default", errType, define)
}

// RegisterErrors register new error defines in default group.
func (em *ErrorManager) RegisterErrors(defines map[ErrorType]*ErrorDefine) {
	em.RegisterGroupErrors("default", defines)
}

// RegisterWords register a new word map in default group.
func (em *ErrorManager) RegisterWords(wordMap map[string]map[string]string) {
	em.RegisterGroupWords("default", wordMap)
}

// RegisterGroupError register a new error define in specified group.
func (em *ErrorManager) RegisterGroupError(group string, errType ErrorType, define *ErrorDefine) {
	g, ok := em.groupDefines[group]
	if !ok {
		em.groupDefines[group] = make(map[ErrorType]*ErrorDefine)
		g = em.groupDefines[group]
	}
	g[errType] = define
}

// RegisterGroupErrors register new error defines in specified group.
func (em *ErrorManager) RegisterGroupErrors(group string, defines map[ErrorType]*ErrorDefine) {
	for errType, define := range defines {
		em.RegisterGroupError(group, errType, define)
	}
}

// RegisterGroupWords register a new word map in specified group.
func (em *ErrorManager) RegisterGroupWords(group string, wordMap map[string]map[string]string) {
	g, ok := em.groupWords[group]
	if !ok {
		em.groupWords[group] = make(map[string]map[string]string)
		g = em.groupWords[group]
	}
	for lang, m := range wordMap {
		vl, ok := g[lang]
		if !ok {
			g[lang] = make(map[string]string)
			vl = g[lang]
		}
		for k, v := range m {
			vl[k] = v
		}
	}
}

// New return a new error with specified error type.
// If the error type needs more fields, fields should be specified and
// will be appended to the error code. The message is generated from
// the registered template of the current language.
func (em *ErrorManager) New(errType ErrorType, fields ...string) *Error {
	return em.NewGroupError("default", errType, fields...)
}

// NewGroupError return a new error with specified error type of specified group.
func (em *ErrorManager) NewGroupError(group string, errType ErrorType, fields ...string) *Error {
	groupDefines, ok := em.groupDefines[group]
	if !ok {
		return NewError("InternalError", "error group not found: "+group)
	}

	define, ok := groupDefines[errType]
	if !ok {
		return NewError("InternalError", "error type not found in group: "+group)
	}

	code, err := em.buildErrorCode(define, fields...)
	if err != nil {
		return NewError("InternalError", err.Error())
	}

	message, err := em.buildErrorMessage(group, define, fields...)
	if err != nil {
		return NewError("InternalError", err.Error())
	}

	return NewError(code, message)
}

// 检查字段是否是大驼峰命名
func checkField(field string) bool {
	if len(field) == 0 {
		return false
	}

	// 首字母必须大写
	if !(field[0] >= 'A' && field[0] <= 'Z') {
		return false
	}

	// 必须由数字或字母组成
	for _, b := range field[1:] {
		if !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9') {
			return false
		}
	}
	return true
}

func (em *ErrorManager) transWord(group string, word string) string {
	g, ok := em.groupWords[group]
	if !ok {
		return word
	}
	words, ok := g[em.lang]
	if !ok {
		return word
	}
	phrase, ok := words[word]
	if !ok {
		return word
	}
	return phrase
}

func (em *ErrorManager) buildErrorCode(define *ErrorDefine, fields ...string) (string, error) {
	errorCode := define.code
	fieldCount := len(fields)
	matched := false
	for _, count := range define.fieldCounts {
		if fieldCount == count {
			matched = true
			break
		}
	}
	if !matched {
		return "", errors.New("Wrong fields count given with " + errorCode)
	}

	for _, field := range fields {
		if !checkField(field) {
			return "", errors.New("Wrong field format of " + field)
		}
	}
	if len(fields) > 0 {
		errorCode += ":" + strings.Join(fields, ":")
	}
	return errorCode, nil
}

// match like: {1}
var placement = regexp.MustCompile(`\{\d+\}`)

func (em *ErrorManager) buildErrorMessage(group string, define *ErrorDefine, fields ...string) (string, error) {
	em.mutex.RLock()
	defer em.mutex.RUnlock()

	msgTmpls, ok := define.msgTmpls[em.lang]
	if !ok {
		return "", nil
	}

	msgTmpl, ok := msgTmpls[len(fields)]
	if !ok {
		return "", errors.New("Wrong fields count given with " + define.code)
	}

	msg := placement.ReplaceAllStringFunc(msgTmpl, func(match string) string {
		index, _ := strconv.Atoi(strings.Trim(match, "{}"))

		// 找出错误码中的相应字段
		var result string
		if index > 0 && index <= len(fields) {
			result = fields[index-1]
		}
		return em.transWord(group, result)
	})

	return msg, nil
}
