package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiritatlas/entwine/internal/export"
	"github.com/spiritatlas/entwine/internal/model"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage profiles",
		Long:  `Add, list, inspect, and delete the profiles used for compatibility analysis.`,
	}

	cmd.AddCommand(addProfileCmd())
	cmd.AddCommand(listProfilesCmd())
	cmd.AddCommand(showProfileCmd())
	cmd.AddCommand(deleteProfileCmd())

	return cmd
}

// profileFlags collects the optional profile fields settable from the
// command line. Anything left empty simply stays unset and lowers the
// profile's completion tier.
type profileFlags struct {
	name               string
	displayName        string
	birth              string
	birthCity          string
	birthState         string
	birthCountry       string
	birthTimezone      string
	middleName         string
	nickname           string
	spiritualName      string
	motherName         string
	fatherName         string
	ancestry           string
	gender             string
	bloodType          string
	dominantHand       string
	eyeColor           string
	weather            string
	moonPhase          string
	hospitalName       string
	firstWord          string
	loveLanguage       string
	communicationStyle string
	attachmentStyle    string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "full birth name")
	flags.StringVar(&f.displayName, "display-name", "", "name to address this person by")
	flags.StringVar(&f.birth, "birth", "", "birth date-time (RFC 3339 or 2006-01-02T15:04)")
	flags.StringVar(&f.birthCity, "birth-city", "", "birth city")
	flags.StringVar(&f.birthState, "birth-state", "", "birth state or region")
	flags.StringVar(&f.birthCountry, "birth-country", "", "birth country")
	flags.StringVar(&f.birthTimezone, "birth-timezone", "", "birth timezone (IANA name)")
	flags.StringVar(&f.middleName, "middle-name", "", "middle name")
	flags.StringVar(&f.nickname, "nickname", "", "nickname")
	flags.StringVar(&f.spiritualName, "spiritual-name", "", "spiritual name")
	flags.StringVar(&f.motherName, "mother-name", "", "mother's name")
	flags.StringVar(&f.fatherName, "father-name", "", "father's name")
	flags.StringVar(&f.ancestry, "ancestry", "", "ancestry")
	flags.StringVar(&f.gender, "gender", "", "energetic gender (masculine, feminine, non_binary, prefer_not_to_say)")
	flags.StringVar(&f.bloodType, "blood-type", "", "blood type (a, b, ab, o)")
	flags.StringVar(&f.dominantHand, "hand", "", "dominant hand (left, right, ambidextrous)")
	flags.StringVar(&f.eyeColor, "eye-color", "", "eye color")
	flags.StringVar(&f.weather, "weather", "", "weather conditions at birth")
	flags.StringVar(&f.moonPhase, "moon-phase", "", "moon phase at birth")
	flags.StringVar(&f.hospitalName, "hospital", "", "hospital of birth")
	flags.StringVar(&f.firstWord, "first-word", "", "first spoken word")
	flags.StringVar(&f.loveLanguage, "love-language", "", "love language (words_of_affirmation, acts_of_service, receiving_gifts, quality_time, physical_touch)")
	flags.StringVar(&f.communicationStyle, "communication-style", "", "communication style (direct, indirect, emotional, analytical, supportive, challenging)")
	flags.StringVar(&f.attachmentStyle, "attachment-style", "", "attachment style (secure, anxious_preoccupied, dismissive_avoidant, disorganized)")
}

func (f *profileFlags) apply(profile *model.Profile) error {
	profile.Name = f.name
	profile.DisplayName = f.displayName
	profile.MiddleName = f.middleName
	profile.Nickname = f.nickname
	profile.SpiritualName = f.spiritualName
	profile.MotherName = f.motherName
	profile.FatherName = f.fatherName
	profile.Ancestry = f.ancestry
	profile.EyeColor = f.eyeColor
	profile.WeatherConditions = f.weather
	profile.MoonPhase = f.moonPhase
	profile.HospitalName = f.hospitalName
	profile.FirstWord = f.firstWord
	profile.Gender = model.Gender(f.gender)
	profile.BloodType = model.BloodType(f.bloodType)
	profile.DominantHand = model.Hand(f.dominantHand)
	profile.LoveLanguage = model.LoveLanguage(f.loveLanguage)
	profile.CommunicationStyle = model.CommunicationStyle(f.communicationStyle)
	profile.AttachmentStyle = model.AttachmentStyle(f.attachmentStyle)

	if f.birth != "" {
		birth, err := parseBirth(f.birth)
		if err != nil {
			return err
		}
		profile.BirthDateTime = &birth
	}

	if f.birthCity != "" || f.birthCountry != "" {
		profile.BirthPlace = &model.BirthPlace{
			City:     f.birthCity,
			State:    f.birthState,
			Country:  f.birthCountry,
			Timezone: f.birthTimezone,
		}
	}

	return nil
}

// parseBirth accepts RFC 3339 or the shorter local form without seconds.
func parseBirth(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized birth date-time %q (want RFC 3339 or 2006-01-02T15:04)", value)
}

func addProfileCmd() *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "add <profile-name>",
		Short: "Add a new profile",
		Long:  `Create a new profile. Every field beyond the profile name is optional; the more fields are set, the more accurate the analysis.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			profile := model.NewProfile(args[0])
			if err := flags.apply(profile); err != nil {
				return err
			}

			if err := store.SaveProfile(ctx, profile); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}

			completion := model.CalculateCompletion(profile)
			fmt.Println(export.FormatSuccess(fmt.Sprintf("Created profile %s (%s)", profile.ProfileName, profile.ID)))
			fmt.Printf("Completion: %d/%d fields (%.0f%%, %s tier)\n",
				completion.CompletedFields, completion.TotalFields,
				completion.Percentage, completion.Tier)
			if len(completion.MissingCriticalFields) > 0 {
				fmt.Println(export.FormatWarning("Missing critical fields: " + strings.Join(completion.MissingCriticalFields, ", ")))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func listProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			profiles, err := store.ListProfiles(ctx)
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			if len(profiles) == 0 {
				fmt.Println(export.InfoStyle.Render("No profiles found. Use 'entwine profiles add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				export.TableHeaderStyle.Render("ID"),
				export.TableHeaderStyle.Render("Profile"),
				export.TableHeaderStyle.Render("Name"),
				export.TableHeaderStyle.Render("Completion"))

			for _, p := range profiles {
				completion := model.CalculateCompletion(p)
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%% (%s)\n",
					p.ID, p.ProfileName, p.BestName(),
					completion.Percentage, completion.Tier)
			}

			return nil
		},
	}
}

func showProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a profile in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			profile, err := store.GetProfile(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			completion := model.CalculateCompletion(profile)

			fmt.Println(export.FormatTitle(profile.BestName()))
			fmt.Printf("ID:          %s\n", profile.ID)
			fmt.Printf("Profile:     %s\n", profile.ProfileName)
			fmt.Printf("Created:     %s\n", profile.CreatedAt.Format(time.RFC3339))
			if profile.Name != "" {
				fmt.Printf("Name:        %s\n", profile.Name)
			}
			if profile.BirthDateTime != nil {
				fmt.Printf("Born:        %s\n", profile.BirthDateTime.Format("January 2, 2006 15:04"))
			}
			if profile.BirthPlace != nil {
				fmt.Printf("Birth place: %s\n", formatBirthPlace(profile.BirthPlace))
			}
			fmt.Printf("Completion:  %d/%d fields (%.0f%%, %s tier)\n",
				completion.CompletedFields, completion.TotalFields,
				completion.Percentage, completion.Tier)
			if len(completion.MissingCriticalFields) > 0 {
				fmt.Println(export.FormatWarning("Missing critical fields: " + strings.Join(completion.MissingCriticalFields, ", ")))
			}

			return nil
		},
	}
}

func formatBirthPlace(place *model.BirthPlace) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{place.City, place.State, place.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func deleteProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteProfile(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete profile: %w", err)
			}

			fmt.Println(export.FormatSuccess("Deleted profile " + args[0]))
			return nil
		},
	}
}
