package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "foodline",
	Short: "Synthetic foodservice sales dataset toolkit",
	Long: `Foodline generates a relational, seasonally-trended foodservice sales
dataset (distributors, operators, shipments and a CRM pipeline), loads it
into an analytics database, validates referential and business-logic
integrity, and computes dashboard KPI exports.

Typical flow:
  foodline generate    build the raw CSV dataset
  foodline load        bulk-load it into the analytics store
  foodline validate    run the integrity report
  foodline kpi         export dashboard KPI views`,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			cmd.Printf("foodline version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./foodline.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("foodline.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
