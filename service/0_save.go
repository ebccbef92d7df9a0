package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/fulldump/apitest"
)

// Save writes a markdown example of a request/response pair. The
// acceptance suite doubles as the source of the API examples; nothing
// is written unless API_EXAMPLES_PATH is set.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}

	s := "# " + title + "\n"
	if description != "" {
		s += description + "\n"
	}
	s += "\n```http\n"

	s += request.Method + " " + request.URL.Path + query + " " + request.Proto + "\n"
	s += "Host: example.com\n\n"
	s += formatJSON(response.BodyRequestString()) + "\n\n"

	s += response.Proto + " " + response.Status + "\n\n"
	s += formatJSON(response.BodyString()) + "\n"

	s += "```\n"

	filename := strings.Replace(strings.ToLower(title), " ", "_", -1) + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	err := os.WriteFile(p, []byte(s), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func formatJSON(body string) string {

	var i interface{}

	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return body
	}

	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(bytes)
}
