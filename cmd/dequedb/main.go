package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/dequedb/bootstrap"
	"github.com/fulldump/dequedb/configuration"
)

var banner = `
______                        ______ ______
|  _  \                       |  _  \| ___ \
| | | | ___   __ _  _   _   ___| | | || |_/ /
| | | |/ _ \ / _` + "`" + ` || | | | / _ \ | | || ___ \
| |/ /|  __/| (_| || |_| ||  __/ |/ / | |_/ /
|___/  \___| \__, | \__,_| \___|___/  \____/
                | |
                |_|          version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(c)

	start()
}
