package importers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultport/vaultport/internal/entities"
)

const keePassExport = `<?xml version="1.0" encoding="utf-8"?>
<KeePassFile>
  <Root>
    <Group>
      <Name>Root</Name>
      <Entry>
        <String><Key>Title</Key><Value>Top Level</Value></String>
        <String><Key>UserName</Key><Value>root</Value></String>
        <String><Key>Password</Key><Value>toor</Value></String>
      </Entry>
      <Group>
        <Name>Banking</Name>
        <Entry>
          <String><Key>Title</Key><Value>Savings</Value></String>
          <String><Key>UserName</Key><Value>ada</Value></String>
          <String><Key>Password</Key><Value>pw1</Value></String>
          <String><Key>URL</Key><Value>https://bank.example.com</Value></String>
          <String><Key>Notes</Key><Value>joint account</Value></String>
          <String><Key>PIN</Key><Value Protected="True">9876</Value></String>
          <String><Key>Branch</Key><Value>Main St</Value></String>
        </Entry>
        <Group>
          <Name>Offshore</Name>
          <Entry>
            <String><Key>Title</Key><Value>Hidden</Value></String>
            <String><Key>UserName</Key><Value>x</Value></String>
            <String><Key>Password</Key><Value>y</Value></String>
          </Entry>
        </Group>
      </Group>
    </Group>
  </Root>
</KeePassFile>`

func TestKeePass2XML(t *testing.T) {
	p := &KeePass2XML{}
	result, err := p.Parse(context.Background(), keePassExport)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Ciphers, 3)

	t.Run("RootEntriesHaveNoFolder", func(t *testing.T) {
		top := result.Ciphers[0]
		assert.Equal(t, "Top Level", top.Name)
		assert.Equal(t, "root", top.Login.Username)

		for _, pair := range result.FolderRelationships {
			assert.NotEqual(t, 0, pair.Cipher, "root-level entry must not be filed")
		}
	})

	t.Run("NestedGroupsJoinWithSlash", func(t *testing.T) {
		require.Len(t, result.Folders, 2)
		assert.Equal(t, "Banking", result.Folders[0].Name)
		assert.Equal(t, "Banking/Offshore", result.Folders[1].Name)
		assert.Equal(t, []entities.RelationshipPair{
			{Cipher: 1, Container: 0},
			{Cipher: 2, Container: 1},
		}, result.FolderRelationships)
	})

	t.Run("EntryAttributes", func(t *testing.T) {
		savings := result.Ciphers[1]
		assert.Equal(t, "Savings", savings.Name)
		assert.Equal(t, "joint account", savings.Notes)
		require.Len(t, savings.Login.URIs, 1)
		assert.Equal(t, "https://bank.example.com", savings.Login.URIs[0].URI)

		require.Len(t, savings.Fields, 2)
		assert.Equal(t, "PIN", savings.Fields[0].Name)
		assert.Equal(t, entities.FieldTypeHidden, savings.Fields[0].Type)
		assert.Equal(t, "Branch", savings.Fields[1].Name)
		assert.Equal(t, entities.FieldTypeText, savings.Fields[1].Type)
	})

	t.Run("WrongRootFails", func(t *testing.T) {
		result, err := p.Parse(context.Background(), "<Other></Other>")
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("InvalidXMLFails", func(t *testing.T) {
		result, err := p.Parse(context.Background(), "<KeePassFile><unclosed")
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}
