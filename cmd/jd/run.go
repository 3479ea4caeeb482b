package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/hrytsenko/json-data/encode"
	"github.com/hrytsenko/json-data/ir"
	"github.com/hrytsenko/json-data/ir/dotpath"
	"github.com/hrytsenko/json-data/parse"

	jsondata "github.com/hrytsenko/json-data"
)

func readArg(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return res, nil
}

func readBean(arg string) (*jsondata.Bean, error) {
	t, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	if t.Type != ir.ObjectType {
		return nil, fmt.Errorf("%s: expected an object document", arg)
	}
	return jsondata.Beans.CreateFromTree(t), nil
}

func defaultArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeNode(cfg *MainConfig, cc *cli.Context, n *ir.Node) error {
	return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	if _, err := dotpath.Parse(path); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range defaultArgs(args[1:]) {
		doc, err := readBean(arg)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc, doc.GetObject(path)); err != nil {
			return err
		}
	}
	return nil
}

func put(cfg *PutConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Put.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: put requires path and value arguments", cli.ErrUsage)
	}
	path := args[0]
	if _, err := dotpath.Parse(path); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	value, err := parse.Parse([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("error decoding value: %w", err)
	}
	for _, arg := range defaultArgs(args[2:]) {
		doc, err := readBean(arg)
		if err != nil {
			return err
		}
		doc.PutObject(path, value)
		if err := writeNode(cfg.MainConfig, cc, doc.Tree()); err != nil {
			return err
		}
	}
	return nil
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	if _, err := dotpath.Parse(path); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range defaultArgs(args[1:]) {
		doc, err := readBean(arg)
		if err != nil {
			return err
		}
		doc.Remove(path)
		if err := writeNode(cfg.MainConfig, cc, doc.Tree()); err != nil {
			return err
		}
	}
	return nil
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a base document", cli.ErrUsage)
	}
	base, err := readBean(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		doc, err := readBean(arg)
		if err != nil {
			return err
		}
		base.MergeEntity(doc)
	}
	return writeNode(cfg.MainConfig, cc, base.Tree())
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readArg(args[0])
	if err != nil {
		return err
	}
	to, err := readArg(args[1])
	if err != nil {
		return err
	}
	res := jsondata.DiffTrees(from, to)
	if res == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, res); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func transform(cfg *TransformConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Transform.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Spec == "" {
		return fmt.Errorf("%w: transform requires -s <specfile>", cli.ErrUsage)
	}
	spec, err := os.ReadFile(cfg.Spec)
	if err != nil {
		return err
	}
	mapper, err := jsondata.NewMapper(spec, jsondata.Beans)
	if err != nil {
		return err
	}
	for _, arg := range defaultArgs(args) {
		doc, err := readBean(arg)
		if err != nil {
			return err
		}
		out, err := mapper.Map(doc)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc, out.Tree()); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Schema == "" {
		return fmt.Errorf("%w: validate requires -s <schemafile>", cli.ErrUsage)
	}
	schema, err := os.ReadFile(cfg.Schema)
	if err != nil {
		return err
	}
	validator, err := jsondata.NewValidator(schema)
	if err != nil {
		return err
	}
	failed := false
	for _, arg := range defaultArgs(args) {
		doc, err := readBean(arg)
		if err != nil {
			return err
		}
		if err := validator.Validate(doc); err != nil {
			failed = true
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range defaultArgs(args) {
		node, err := readArg(arg)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc, node); err != nil {
			return err
		}
	}
	return nil
}
