package response

import (
	"strings"
	"testing"
)

func newTestErrorManager() *ErrorManager {
	em := NewErrorManager()
	em.RegisterGroupErrors("global", globalErrorDefines)
	em.RegisterErrors(appErrorDefines)
	return em
}

func TestNewError(t *testing.T) {
	em := newTestErrorManager()

	e := em.New(ErrorInvalidStatusCode)
	if e.Code != "InvalidStatusCode" {
		t.Errorf("Code = %q", e.Code)
	}
	if e.Message != "Status code must be in range [100, 600)!" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestNewErrorWithFields(t *testing.T) {
	em := newTestErrorManager()

	e := em.New(ErrorObjectNotExist, "User")
	if e.Code != "ObjectNotExist:User" {
		t.Errorf("Code = %q", e.Code)
	}
	if e.Message != "User does not exist!" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestNewGroupError(t *testing.T) {
	em := newTestErrorManager()

	e := em.NewGroupError("global", errorActionNotExist)
	if e.Code != "ActionNotExist" {
		t.Errorf("Code = %q", e.Code)
	}

	e = em.NewGroupError("nosuchgroup", errorActionNotExist)
	if e.Code != "InternalError" {
		t.Errorf("Code = %q, want InternalError for unknown group", e.Code)
	}
}

func TestErrorLangAndWords(t *testing.T) {
	em := newTestErrorManager()
	em.RegisterWords(map[string]map[string]string{
		"zh_cn": {"User": "用户"},
	})
	em.SetLang("zh_cn")

	e := em.New(ErrorObjectNotExist, "User")
	if e.Message != "用户不存在！" {
		t.Errorf("Message = %q", e.Message)
	}
	if em.GetLang() != "zh_cn" {
		t.Errorf("GetLang() = %q", em.GetLang())
	}
}

func TestErrorFieldValidation(t *testing.T) {
	em := newTestErrorManager()

	// 字段必须是大驼峰命名
	e := em.New(ErrorObjectNotExist, "user")
	if e.Code != "InternalError" {
		t.Errorf("Code = %q, want InternalError for bad field", e.Code)
	}

	// 字段个数必须匹配定义
	e = em.New(ErrorOperationFailed)
	if e.Code != "InternalError" || !strings.Contains(e.Message, "fields count") {
		t.Errorf("Code = %q, Message = %q", e.Code, e.Message)
	}
}

func TestErrorValue(t *testing.T) {
	e := NewError("SomeCode", "some message")
	if e.Error() != "SomeCode: some message" {
		t.Errorf("Error() = %q", e.Error())
	}

	e.SetData(map[string]int{"n": 1})
	if e.Data == nil {
		t.Error("Data not set")
	}

	if !IsError(e) {
		t.Error("IsError(*Error) = false")
	}
	if IsError("not an error") {
		t.Error("IsError(string) = true")
	}
	if IsInvalidStatusCode(e) {
		t.Error("IsInvalidStatusCode on unrelated error")
	}
}
