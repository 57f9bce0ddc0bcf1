package str

import (
	"bytes"
	"crypto/md5"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

const (
	// UpperAlphabet upper alphabet chars
	UpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// LowerAlphabet lower alphabet chars
	LowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	// Alphabet alphabet chars with upper and lower
	Alphabet = UpperAlphabet + LowerAlphabet
	// Numerals numeral chars
	Numerals = "1234567890"
	// Alphanumeric alphabet and numeral chars
	Alphanumeric = Alphabet + Numerals
)

// RandString inspired from https://github.com/jmcvetta/randutil/blob/master/randutil.go
func RandString(length int, charset string) string {
	str := make([]byte, length)
	if charset == "" {
		charset = Alphabet
	}
	charlen := big.NewInt(int64(len(charset)))
	for i := 0; i < length; i++ {
		v, _ := rand.Int(rand.Reader, charlen)
		str[i] = charset[int(v.Int64())]
	}
	return string(str)
}

// UUIDStr return uuid string
func UUIDStr() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// Md5Str md5 encode string s
func Md5Str(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

// ExecuteTemplate simplify template execute
func ExecuteTemplate(tpl string, v interface{}) (string, error) {
	tp, err := template.New("tpl").Parse(tpl)
	if err != nil {
		return "", fmt.Errorf("parse template failed: %v", err)
	}

	buf := &bytes.Buffer{}
	if err = tp.Execute(buf, v); err != nil {
		return "", fmt.Errorf("template execute: %v", err)
	}
	return buf.String(), nil
}
