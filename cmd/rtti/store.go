package main

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-rtti/codec"
	"github.com/signadot/tony-format/go-rtti/marshal"
	"github.com/signadot/tony-format/go-rtti/meta"
	"github.com/signadot/tony-format/go-rtti/objstore"
)

func store(cfg *StoreConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Store.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Store.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

const storeTimeout = 10 * time.Second

// client returns a store client and the context to use it with. The
// returned func releases both.
func (cfg *StoreConfig) client() (*objstore.Client, context.Context, func()) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	c := objstore.NewClient(rdb, codec.JSON{Registry: meta.Default()}, objstore.WithPrefix(cfg.Prefix))
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	return c, ctx, func() {
		cancel()
		rdb.Close()
	}
}

func storePut(cfg *StorePutConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Put.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: put requires a key and at most one file", cli.ErrUsage)
	}
	t, err := lookupType(cfg.Type)
	if err != nil {
		return err
	}
	ins, err := readInputs(args[1:])
	if err != nil {
		return err
	}
	a, err := marshal.DefaultMapper().Read(ins[0].data, t, cfg.unmapOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", ins[0].name, err)
	}
	c, ctx, done := cfg.client()
	defer done()
	if err := c.Put(ctx, args[0], a.Interface(), cfg.TTL); err != nil {
		return err
	}
	theLog.Info("stored", "key", args[0], "type", t.Name())
	return nil
}

func storeGet(cfg *StoreGetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires a key", cli.ErrUsage)
	}
	t, err := lookupType(cfg.Type)
	if err != nil {
		return err
	}
	out := reflect.New(t.GoType())
	c, ctx, done := cfg.client()
	defer done()
	if err := c.Get(ctx, args[0], out.Interface()); err != nil {
		if errors.Is(err, objstore.ErrKeyNotFound) {
			theLog.Warn("not found", "key", args[0])
		}
		return err
	}
	d, err := marshal.DefaultMapper().Marshal(out.Interface(), cfg.mapOpts(cc.Out)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n", d)
	return err
}

func storeDel(cfg *StoreDelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a key", cli.ErrUsage)
	}
	c, ctx, done := cfg.client()
	defer done()
	if err := c.Delete(ctx, args...); err != nil {
		return err
	}
	theLog.Info("deleted", "keys", args)
	return nil
}

func storeKeys(cfg *StoreKeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	match := "*"
	switch len(args) {
	case 0:
	case 1:
		match = args[0]
	default:
		return fmt.Errorf("%w: keys takes at most one pattern", cli.ErrUsage)
	}
	c, ctx, done := cfg.client()
	defer done()
	keys, err := c.Keys(ctx, match)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(cc.Out, k)
	}
	return nil
}
