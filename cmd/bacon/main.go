// Command bacon encodes, decodes, disguises, and reveals secrets using
// Bacon's cipher.
//
// Usage:
//
//	bacon -mode encode -secret "My secret"
//	bacon -mode disguise -secret "My secret" -in public.txt
//	bacon -mode reveal -in disguised.txt
//	bacon -mode decode -in cipher.txt
//
// The codec and carrier default to the first-variant table with 'A'/'B'
// symbols and the letter-case carrier; pass -config to select others.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/zoobzio/bacon"
	"github.com/zoobzio/bacon/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML configuration")
	mode := flag.String("mode", "disguise", "operation: encode, decode, disguise, reveal")
	secret := flag.String("secret", "", "secret to encode or disguise")
	in := flag.String("in", "", "input file (default stdin)")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := &config.Config{}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logger.Fatal("load config", zap.String("path", *cfgPath), zap.Error(err))
		}
		cfg = loaded
	}

	codec, err := cfg.BuildCodec()
	if err != nil {
		logger.Fatal("build codec", zap.Error(err))
	}

	result, err := run(*mode, *secret, *in, cfg, codec)
	if err != nil {
		logger.Fatal("run", zap.String("mode", *mode), zap.Error(err))
	}

	if err := write(*out, result); err != nil {
		logger.Fatal("write output", zap.String("path", *out), zap.Error(err))
	}
}

func run(mode, secret, in string, cfg *config.Config, codec bacon.Codec[rune]) (string, error) {
	switch mode {
	case "encode":
		content, err := secretOrInput(secret, in)
		if err != nil {
			return "", err
		}
		return string(codec.Encode(content)), nil

	case "decode":
		cipher, err := read(in)
		if err != nil {
			return "", err
		}
		return codec.Decode([]rune(cipher)), nil

	case "disguise":
		if secret == "" {
			return "", fmt.Errorf("disguise needs -secret")
		}
		public, err := read(in)
		if err != nil {
			return "", err
		}
		carrier, err := cfg.BuildCarrier()
		if err != nil {
			return "", err
		}
		return carrier.Disguise(secret, public, codec)

	case "reveal":
		input, err := read(in)
		if err != nil {
			return "", err
		}
		carrier, err := cfg.BuildCarrier()
		if err != nil {
			return "", err
		}
		return carrier.Reveal(input, codec)

	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

func secretOrInput(secret, in string) (string, error) {
	if secret != "" {
		return secret, nil
	}
	return read(in)
}

func read(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func write(path, result string) error {
	if path == "" {
		_, err := fmt.Println(result)
		return err
	}
	return os.WriteFile(path, []byte(result+"\n"), 0o644)
}
