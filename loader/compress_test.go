// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loader_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pierrec/lz4/v4"

	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/loader"
)

var _ = Describe("LoadFromFile", func() {
	const src = "dates,a\n" +
		"2021-01-01,1\n" +
		"2021-01-02,2\n"

	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, data, 0o600)).To(Succeed())
		return path
	}

	It("reads plain files", func() {
		path := write("prices.csv", []byte(src))
		ts, err := loader.LoadFromFile(path, loader.Options{Freq: calendar.Daily})
		Expect(err).To(BeNil())
		Expect(ts.Len()).To(Equal(2))
		Expect(ts.At(1, 0)).To(Equal(2.0))
	})

	It("decompresses gzip sources", func() {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(src))
		Expect(err).To(BeNil())
		Expect(zw.Close()).To(Succeed())

		path := write("prices.csv.gz", buf.Bytes())
		ts, err := loader.LoadFromFile(path, loader.Options{Freq: calendar.Daily})
		Expect(err).To(BeNil())
		Expect(ts.Len()).To(Equal(2))
	})

	It("decompresses lz4 sources", func() {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		_, err := zw.Write([]byte(src))
		Expect(err).To(BeNil())
		Expect(zw.Close()).To(Succeed())

		path := write("prices.csv.lz4", buf.Bytes())
		rs, err := loader.LoadRecordsFromFile(path, loader.Options{Freq: calendar.Daily})
		Expect(err).To(BeNil())
		Expect(rs.Len()).To(Equal(2))
	})

	It("fails cleanly on a missing file", func() {
		_, err := loader.LoadFromFile(filepath.Join(dir, "nope.csv"), loader.Options{Freq: calendar.Daily})
		Expect(err).To(MatchError(os.ErrNotExist))
	})
})
