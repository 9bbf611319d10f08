package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokerenv/internal/config"
)

type VariantsCmd struct {
	Config string `help:"Variants file" type:"path" default:"variants.hcl"`
}

func (c *VariantsCmd) Run() error {
	cat, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	for _, v := range cat.Variants {
		streets := make([]string, len(v.Streets))
		for i, s := range v.Streets {
			streets[i] = s.Name
		}
		fmt.Printf("%-20s %s, %d streets (%s)\n",
			v.Name, v.Betting, len(v.Streets), strings.Join(streets, ", "))
	}
	return nil
}
