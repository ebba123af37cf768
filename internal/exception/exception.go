// Copyright 2025 Nguyen Nhat Nguyen
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

// Package exception defines the failure kinds raised by the demo program and
// the ordered handler that recovers them.
package exception

import (
	"errors"
	"fmt"
)

// ErrException is the base failure kind. Every failure defined here reports
// errors.Is(err, ErrException).
var ErrException = errors.New("exception")

// Other is printed when a failure of the base kind is not a MyException.
const Other = "Other"

// MyException is the specific failure kind. It is returned by value.
type MyException struct{}

func (MyException) Error() string {
	return "MyException"
}

func (MyException) Is(target error) bool {
	return target == ErrException
}

// Exception is a failure of the base kind carrying its own message.
type Exception struct {
	Message string
	Cause   error
}

func (e Exception) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e Exception) Unwrap() error {
	return e.Cause
}

func (e Exception) Is(target error) bool {
	return target == ErrException
}

// New returns a base-kind failure with the given message.
func New(message string) error {
	return Exception{Message: message}
}

// Catch dispatches err to the most specific matching handler:
//
//  1. MyException anywhere in the chain yields its Error() string;
//  2. any other base-kind failure yields Other;
//  3. anything else is not handled.
func Catch(err error) (string, bool) {
	var my MyException
	switch {
	case err == nil:
		return "", false
	case errors.As(err, &my):
		return my.Error(), true
	case errors.Is(err, ErrException):
		return Other, true
	default:
		return "", false
	}
}
