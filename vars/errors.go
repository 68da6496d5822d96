package vars

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

const PrefixPath = "github.com/11090815/"

type PathError struct {
	err  string
	path string
}

func (pe PathError) Error() string {
	return fmt.Sprintf("[%s] => {%s}", pe.path, pe.err)
}

func NewPathError(err string) PathError {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return PathError{
			err:  err,
			path: "unknown path",
		}
	}

	index := strings.Index(file, PrefixPath)
	if index == -1 {
		file = "unknown file"
	} else {
		file = file[index+len(PrefixPath):]
	}
	
	funcName := runtime.FuncForPC(pc).Name()
	index = strings.LastIndex(funcName, ".")
	if index == -1 {
		funcName = "unknown function"
	} else {
		funcName = funcName[index+1:]
	}
	
	return PathError{
		err:  err,
		path: fmt.Sprintf("\"%s\" \"%s\" #%d", file, funcName, line),
	}
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

type ErrorShouldNotBeNil struct {
	Type reflect.Type
}

func (err ErrorShouldNotBeNil) Error() string {
	return fmt.Sprintf("%s should not be nil", err.Type.String())
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorInvalidLength 表示字节编码的长度与期望不符，Kind 描述被解码的对象。
type ErrorInvalidLength struct {
	Kind string
	Want int
	Got  int
}

func (err ErrorInvalidLength) Error() string {
	return fmt.Sprintf("invalid %s encoding: want %d bytes, got [%d]", err.Kind, err.Want, err.Got)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorInvalidPoint 表示解码得到的点不在曲线上、坐标越界或者不在期望的子群中。
type ErrorInvalidPoint struct {
	Group  string
	Reason string
}

func (err ErrorInvalidPoint) Error() string {
	return fmt.Sprintf("invalid %s point: [%s]", err.Group, err.Reason)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

type ErrorUnknownCurve struct {
	Name string
}

func (err ErrorUnknownCurve) Error() string {
	return fmt.Sprintf("unknown curve [%s]", err.Name)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorInvalidSignature 表示签名验证失败。
type ErrorInvalidSignature struct {
	Scheme string
	Reason string
}

func (err ErrorInvalidSignature) Error() string {
	return fmt.Sprintf("invalid %s signature: [%s]", err.Scheme, err.Reason)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// ErrorUnsupportedOperation 表示该曲线形式不支持所请求的运算。
type ErrorUnsupportedOperation struct {
	Op    string
	Curve string
}

func (err ErrorUnsupportedOperation) Error() string {
	return fmt.Sprintf("%s is not supported on curve [%s]", err.Op, err.Curve)
}
