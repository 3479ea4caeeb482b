package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/hrytsenko/json-data/encode"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='compact output'"`
	Color   bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if !cfg.Compact {
		res = append(res, encode.EncodeIndent(2))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type PutConfig struct {
	*MainConfig
	Put *cli.Command
}

type DelConfig struct {
	*MainConfig
	Del *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type TransformConfig struct {
	*MainConfig
	Spec      string `cli:"name=s aliases=spec desc='transformation spec file'"`
	Transform *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Schema   string `cli:"name=s aliases=schema desc='schema file'"`
	Validate *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}
