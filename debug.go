// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

//go:build debug

package robdd

import (
	"log"
	"os"
)

const debugEnabled = true

func init() {
	log.SetOutput(os.Stdout)
	log.SetPrefix("robdd: ")
}

// trace logs a debug message when the package is built with the debug tag.
// It is a no-op (and compiles away entirely) otherwise, see debug_off.go.
func trace(format string, args ...interface{}) {
	log.Printf(format, args...)
}
