// This tool converts a PCM wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavegen"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

var errMissingPath = errors.New("you must set the -path flag")

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	flagPath := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *flagPath == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*flagPath)
	if err != nil {
		return err
	}

	outPath, err := convert(sourcePath)
	if err != nil {
		return err
	}

	log.Printf("wav file converted to %s", outPath)

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return filepath.Join(usr.HomeDir, path[2:]), nil
}

func convert(sourcePath string) (string, error) {
	file, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}
	defer file.Close()

	decoder, err := wavegen.NewReader(file)
	if err != nil {
		return "", err
	}

	header := decoder.Header()
	if header.Info.Format() != wavegen.FormatPCM {
		return "", fmt.Errorf("%w: aiff holds integer pcm only, got %s", wavegen.ErrUnsupported, header.Info)
	}

	buf, err := decoder.IntBuffer()
	if err != nil {
		return "", err
	}

	toAiffPCM(buf)

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, int(header.SampleRate), int(header.Info.BitDepth()), int(header.Info.Channels()))

	if err := encoder.Write(buf); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to finish %s: %w", outPath, err)
	}

	return outPath, nil
}

// toAiffPCM recenters unsigned 8-bit wav values, as aiff stores 8-bit
// samples signed. Wider depths are signed in both containers.
func toAiffPCM(buf *audio.IntBuffer) {
	if buf.SourceBitDepth != 8 {
		return
	}

	for i, v := range buf.Data {
		buf.Data[i] = v - 128
	}
}
