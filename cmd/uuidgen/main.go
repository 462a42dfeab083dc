package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	uuid4 "github.com/Wildcard209/UUID-Generator"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "uuidgen",
		Short:         "uuidgen generates and inspects RFC 4122 version 4 UUIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more random UUIDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			format, _ := cmd.Flags().GetString("format")
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			for i := 0; i < count; i++ {
				id, err := uuid4.New()
				if err != nil {
					return err
				}
				s, err := render(id, format)
				if err != nil {
					return err
				}
				fmt.Println(s)
			}
			return nil
		},
	}
	generateCmd.Flags().IntP("count", "n", 1, "Number of UUIDs to generate")
	generateCmd.Flags().String("format", "canonical", "Output format: canonical|hex|base64")

	infoCmd := &cobra.Command{
		Use:   "info <uuid>",
		Short: "Show the version and variant of a UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid4.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("uuid:    %s\n", id)
			fmt.Printf("version: %d\n", id.Version())
			fmt.Printf("variant: %d\n", id.Variant())
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare <uuid-a> <uuid-b>",
		Short: "Compare two UUIDs for equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := uuid4.Parse(args[0])
			if err != nil {
				return fmt.Errorf("first argument: %w", err)
			}
			b, err := uuid4.Parse(args[1])
			if err != nil {
				return fmt.Errorf("second argument: %w", err)
			}
			if a.Equal(b) {
				fmt.Println("equal")
				return nil
			}
			fmt.Println("not equal")
			os.Exit(1)
			return nil
		},
	}

	rootCmd.AddCommand(generateCmd, infoCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "uuidgen:", err)
		os.Exit(1)
	}
}

func render(id uuid4.UUID, format string) (string, error) {
	switch format {
	case "canonical":
		return id.String(), nil
	case "hex":
		return id.EncodeToHex(), nil
	case "base64":
		return id.EncodeToBase64(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
