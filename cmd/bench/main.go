package main

import (
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | PUSH | SHIFT"`
	Base    string `usage:"base URL"`
	N       int64  `usage:"number of documents"`
	Workers int    `usage:"number of workers"`
}

func main() {

	c := Config{
		Test:    "push",
		Base:    "",
		N:       1_000_000,
		Workers: 16,
	}
	goconfig.Read(&c)

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestPush(c)
		TestShift(c)
	case "PUSH":
		TestPush(c)
	case "SHIFT":
		TestShift(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}
}
