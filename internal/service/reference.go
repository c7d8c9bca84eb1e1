// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anas Zait

package service

import (
	"regexp"
	"strconv"

	"github.com/anaszait/tadabbur/models"
)

// Reference notations recognised inside dictated or typed note text,
// tried most-specific first:
//
//	"surah 2 verse 255", "surah 2 ayah 255"
//	"s2 v255"
//	"2:255", "2 : 255", "Q2:255"
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsurah\s+(\d{1,3})\s*,?\s*(?:verse|ayah)\s+(\d{1,3})\b`),
	regexp.MustCompile(`(?i)\bs\s*(\d{1,3})\s*v\s*(\d{1,3})\b`),
	regexp.MustCompile(`(?i)\bq?(\d{1,3})\s*:\s*(\d{1,3})`),
}

// ExtractReference scans free text for the first verse reference in any of
// the supported notations and returns it. References with an out-of-range
// chapter or verse number are skipped, not reported as errors.
func ExtractReference(text string) (surah, verse int, ok bool) {
	for _, pattern := range referencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			s, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			v, err := strconv.Atoi(match[2])
			if err != nil {
				continue
			}
			if s < models.MinSurah || s > models.MaxSurah || v < models.MinVerse {
				continue
			}
			return s, v, true
		}
	}
	return 0, 0, false
}
