package internalenv

import (
	"strings"

	"github.com/spf13/pflag"
	internalscope "github.com/tvdb-renamer/tvdbrenamer/internal/scope"
)

var (
	Prefix = "TVDB_RENAMER_"
	EnvSep = "_"
	envRep = strings.NewReplacer("-", EnvSep, ".", EnvSep)
)

const (
	FlagAnnotation = "___tvdbrenamer_flagenvs"
)

func NormEnv(str string) string {
	return envRep.Replace(strings.ToUpper(str))
}

// Name returns the environment variable bound to the flag named name (eg., TVDB_RENAMER_LOGGING_CONFIG).
func Name(name string) string {
	return Prefix + NormEnv(name)
}

// BindEnv binds the environment variables annotated on the flags of fs to the scope's viper instance.
func BindEnv(s *internalscope.Scope, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		envs, defineEnv := f.Annotations[FlagAnnotation]
		if !defineEnv || len(envs) == 0 || s.IsEnvBound(f.Name) || err != nil {
			return
		}
		s.SetBound(f.Name)
		input := []string{f.Name}
		input = append(input, envs...)
		err = s.Viper().BindEnv(input...)
	})

	return err
}
